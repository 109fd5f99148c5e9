package writer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/anuraags/raytracer/scene"
)

// The Writer interface is implemented by all scene writers.
type Writer interface {
	// Write scene definition
	Write(*scene.Scene) error
}

// Write scene to a file. The format is selected using the file extension:
// .zip for compiled scenes and .json for text scenes.
func WriteScene(sc *scene.Scene, filename string) error {
	var writer Writer
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".zip":
		writer = newZipSceneWriter(filename)
	case ".json":
		writer = newJSONSceneWriter(filename)
	default:
		return fmt.Errorf("writer: unsupported scene format %q", filepath.Ext(filename))
	}
	return writer.Write(sc)
}
