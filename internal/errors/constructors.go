package errors

// Convenience functions for common error patterns

// Config errors

func ConfigNotFound(path string) *SiteError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigExists(path string) *SiteError {
	return New(CategoryConfig, SeverityFatal, "configuration file already exists (use --force to overwrite)").
		WithContext("path", path)
}

func ConfigDecode(path string, cause error) *SiteError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "failed to decode configuration").
		WithContext("path", path)
}

func ValidationFailed(field, reason string) *SiteError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Export errors

func ExportFailed(target string, cause error) *SiteError {
	return Wrap(cause, CategoryExport, SeverityFatal, "export failed").
		WithContext("target", target)
}

func UnknownTarget(target string) *SiteError {
	return New(CategoryValidation, SeverityFatal, "unknown export target").
		WithContext("target", target)
}

func WriteFailed(path string, cause error) *SiteError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "write failed").
		WithContext("path", path)
}

// Watch errors

func WatchFailed(path string, cause error) *SiteError {
	return Wrap(cause, CategoryWatch, SeverityError, "config watch failed").
		WithContext("path", path)
}

// Internal errors

func InternalError(message string, cause error) *SiteError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
