package writer

import (
	"encoding/json"
	"os"

	"github.com/anuraags/raytracer/log"
	"github.com/anuraags/raytracer/scene"
)

type jsonSceneWriter struct {
	logger    log.Logger
	sceneFile string
}

func newJSONSceneWriter(sceneFile string) *jsonSceneWriter {
	return &jsonSceneWriter{
		logger:    log.New("json writer"),
		sceneFile: sceneFile,
	}
}

// Write scene definition as an indented json document.
func (w *jsonSceneWriter) Write(sc *scene.Scene) (err error) {
	w.logger.Noticef("writing scene to %s", w.sceneFile)

	f, err := os.Create(w.sceneFile)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(scene.NewDocument(sc))
}
