package mlog

// Global instance for package-level functions and the bridge layer
var defaultManager = NewManager()

// Default returns the module-level manager shared by the package-level
// functions and the bridge.
func Default() *Manager {
	return defaultManager
}

// Init initializes or reconfigures the default manager.
func Init(cfg *Config) error {
	return defaultManager.Init(cfg)
}

// InitPath initializes the default manager with defaults bound to path.
func InitPath(path string) error {
	return defaultManager.InitPath(path)
}

// Shutdown flushes and releases the default manager's resources.
func Shutdown() error {
	return defaultManager.Shutdown()
}

// IsInitialized reports the default manager's lifecycle state.
func IsInitialized() bool {
	return defaultManager.IsInitialized()
}

// Log records a message at the given level.
func Log(level int64, message string) {
	defaultManager.Log(level, message)
}

// LogException records an exception triple at Error severity.
func LogException(excType, message, stackTrace string) {
	defaultManager.LogException(excType, message, stackTrace)
}

// Flush forces all handed-off records onto disk.
func Flush() error {
	return defaultManager.Flush()
}

// SetLevel changes the minimum recorded level.
func SetLevel(level int64) {
	defaultManager.SetLevel(level)
}

// GetLevel returns the current minimum level.
func GetLevel() int64 {
	return defaultManager.GetLevel()
}

// SetErrorCallback registers the diagnostic callback on the default manager.
func SetErrorCallback(cb ErrorCallback) {
	defaultManager.SetErrorCallback(cb)
}

// Trace logs a message at trace level.
func Trace(message string) {
	defaultManager.Trace(message)
}

// Debug logs a message at debug level.
func Debug(message string) {
	defaultManager.Debug(message)
}

// Info logs a message at info level.
func Info(message string) {
	defaultManager.Info(message)
}

// Warn logs a message at warning level.
func Warn(message string) {
	defaultManager.Warn(message)
}

// Error logs a message at error level.
func Error(message string) {
	defaultManager.Error(message)
}

// Critical logs a message at critical level.
func Critical(message string) {
	defaultManager.Critical(message)
}
