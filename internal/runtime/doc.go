// Package runtime provides a context type that holds the logger, repository
// root, and configuration for use throughout the application. This avoids
// passing multiple parameters.
package runtime
