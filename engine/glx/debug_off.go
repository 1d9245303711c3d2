//go:build !glxdebug

package glx

const debugContext = false
