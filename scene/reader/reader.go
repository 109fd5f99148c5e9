package reader

import (
	"fmt"

	"github.com/anuraags/raytracer/asset"
	"github.com/anuraags/raytracer/scene"
)

// The Reader interface is implemented by all scene readers.
type Reader interface {
	// Read scene definition from a resource.
	Read(*asset.Resource) (*scene.Scene, error)
}

// Read scene from a local file or http(s) URL. The reader is selected using
// the file extension: .json for text scenes and .zip for compiled scenes.
func ReadScene(filename string) (*scene.Scene, error) {
	res, err := asset.NewResource(filename)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	return Read(res)
}

// Read scene from an already opened resource.
func Read(res *asset.Resource) (*scene.Scene, error) {
	var reader Reader
	switch res.Ext() {
	case ".json":
		reader = newJSONSceneReader()
	case ".zip":
		reader = newZipSceneReader()
	default:
		return nil, fmt.Errorf("reader: unsupported scene format %q", res.Ext())
	}
	return reader.Read(res)
}
