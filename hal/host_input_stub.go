//go:build !cgo

package hal

// poll is a no-op without the window backend; headless runs have no key
// source.
func (in *hostInput) poll() {}
