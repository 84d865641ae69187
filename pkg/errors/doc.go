// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeTimeout,
//	    "failed to read file descriptor limits",
//	    ctx.Err(),
//	    map[string]interface{}{
//	        "probe": "fd_usage",
//	        "pid": os.Getpid(),
//	    },
//	)
package errors
