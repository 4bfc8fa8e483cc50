// Package media implements the storage gateway core: environment and folder
// resolution, unique name generation, and the upload/retrieve/delete
// operations exposed over HTTP.
package media

// Environment is the logical deployment context a file is uploaded for.
type Environment string

const (
	// Production stores files in the folder served to real users.
	Production Environment = "production"
	// Development stores files in the folder used for testing uploads.
	Development Environment = "development"
)

// DefaultEnvironment is applied when a client omits the environment field.
const DefaultEnvironment = Development

// Folder is the physical directory name an environment maps to. Clients never
// choose a folder directly on upload; they only select an Environment.
type Folder string

const (
	// FolderMedia holds production files.
	FolderMedia Folder = "media"
	// FolderMediaDev holds development files.
	FolderMediaDev Folder = "media-dev"
)

// ParseEnvironment validates an untrusted environment string against the
// closed set of known environments.
func ParseEnvironment(raw string) (Environment, error) {
	switch Environment(raw) {
	case Production:
		return Production, nil
	case Development:
		return Development, nil
	}
	return "", &ValidationError{
		Code:    "invalid_environment",
		Message: `environment must be one of: "production", "development"`,
	}
}

// Folder returns the storage folder for the environment.
func (e Environment) Folder() Folder {
	if e == Production {
		return FolderMedia
	}
	return FolderMediaDev
}

// ParseFolder validates an untrusted folder path segment against the closed
// set of known folders. Retrieval and deletion paths accept client-supplied
// folder names and must pass them through here before any filesystem work.
func ParseFolder(raw string) (Folder, error) {
	switch Folder(raw) {
	case FolderMedia:
		return FolderMedia, nil
	case FolderMediaDev:
		return FolderMediaDev, nil
	}
	return "", &ValidationError{
		Code:    "invalid_folder",
		Message: `folder must be one of: "media", "media-dev"`,
	}
}

// Folders lists every folder the gateway owns. The storage initializer
// creates exactly these; nothing else under the root is ever touched.
func Folders() []Folder {
	return []Folder{FolderMedia, FolderMediaDev}
}
