//go:build glxdebug

package glx

// debugContext adds the debug bit to versioned context requests in diagnostic builds.
const debugContext = true
