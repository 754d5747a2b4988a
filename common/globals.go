package common

// GradVersion is the current Grad toolchain version as a string.
const GradVersion string = "0.1.0"

// ManifestFileName is the name for Grad project manifest files.
const ManifestFileName string = "grad.toml"

// SASTFileExt is the file extension for checked-tree input files as handed
// over by the front end.
const SASTFileExt string = ".sast.json"

// TargetFileExt is the file extension for emitted target source files.
const TargetFileExt string = ".cish"

// CacheDirName is the emit caching directory name.
const CacheDirName string = ".gradc"

// CacheFileName is the name of the emit cache database inside the cache
// directory.
const CacheFileName string = "emit.db"
