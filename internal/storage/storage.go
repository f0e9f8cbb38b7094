package storage

import (
	"path"    // URL path joining
	"strconv" // Integer formatting

	"github.com/google/uuid" // Random object names
)

// ObjectPath builds the storage path for an uploaded file: a random name
// under the uploading user's identifier prefix, keeping the original
// extension. Randomizing the name avoids collisions and hides the
// uploader's filename.
func ObjectPath(userID uint, filename string) string {
	ext := path.Ext(filename) // Preserve the original extension, dot included
	return path.Join(strconv.FormatUint(uint64(userID), 10), uuid.NewString()+ext)
}

// PublicURL derives the browsable URL for a stored object path.
func PublicURL(baseURL, objectPath string) string {
	return baseURL + "/uploads/" + objectPath
}
