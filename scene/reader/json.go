package reader

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/anuraags/raytracer/asset"
	"github.com/anuraags/raytracer/log"
	"github.com/anuraags/raytracer/scene"
)

type jsonSceneReader struct {
	logger log.Logger
}

// Create a new json scene reader.
func newJSONSceneReader() *jsonSceneReader {
	return &jsonSceneReader{
		logger: log.New("json reader"),
	}
}

// Read scene definition from a json document.
func (p *jsonSceneReader) Read(sceneRes *asset.Resource) (*scene.Scene, error) {
	p.logger.Noticef(`parsing scene from "%s"`, sceneRes.Path())
	start := time.Now()

	var doc scene.Document
	dec := json.NewDecoder(sceneRes)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("reader: decode %s: %w", sceneRes.Path(), err)
	}

	sc, err := doc.Scene()
	if err != nil {
		return nil, fmt.Errorf("reader: %s: %w", sceneRes.Path(), err)
	}

	p.logger.Noticef("loaded scene with %d primitive(s) and %d light(s) in %d ms", len(sc.Primitives), len(sc.Lights), time.Since(start).Nanoseconds()/1000000)
	return sc, nil
}
