package web

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/getzep/animalfacts/internal"
	"github.com/getzep/animalfacts/pkg/models"
	"github.com/getzep/animalfacts/pkg/server/handlertools"
)

var log = internal.GetLogger()

const ImagesPathPrefix = "/images"

// AnimalImages maps a lowercase animal name to the URL of its image under ImagesPathPrefix.
var AnimalImages = map[string]string{
	"cat":      ImagesPathPrefix + "/cat.jpg",
	"dog":      ImagesPathPrefix + "/dog.jpg",
	"elephant": ImagesPathPrefix + "/elephant.jpg",
}

// LookupAnimalImage returns the image URL for name, ignoring case.
func LookupAnimalImage(name string) (string, bool) {
	url, ok := AnimalImages[strings.ToLower(name)]
	return url, ok
}

// EnsureImagesDir creates dir if it does not exist.
func EnsureImagesDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	log.Debugf("serving images from %s", dir)
	return nil
}

// IndexHandler serves the front page from indexFile on disk.
func IndexHandler(indexFile string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := os.Stat(indexFile); errors.Is(err, fs.ErrNotExist) {
			log.Warnf("front page %s not found", indexFile)
			handlertools.RenderError(w, models.NewNotFoundError("front page"), http.StatusNotFound)
			return
		}
		http.ServeFile(w, r, indexFile)
	}
}

// ImagesHandler serves files from dir under ImagesPathPrefix. Missing files and directories
// get a JSON not found error.
func ImagesHandler(dir string) http.Handler {
	files := noListingFileSystem{http.Dir(dir)}
	fileServer := http.FileServer(files)

	return http.StripPrefix(
		ImagesPathPrefix,
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			f, err := files.Open(path.Clean("/" + r.URL.Path))
			if err != nil {
				handlertools.RenderError(w, models.NewNotFoundError("image"), http.StatusNotFound)
				return
			}
			_ = f.Close()
			fileServer.ServeHTTP(w, r)
		}),
	)
}

type noListingFileSystem struct {
	fs http.FileSystem
}

func (nfs noListingFileSystem) Open(name string) (http.File, error) {
	f, err := nfs.fs.Open(name)
	if err != nil {
		return nil, err
	}

	s, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if s.IsDir() {
		_ = f.Close()
		return nil, fs.ErrNotExist
	}

	return f, nil
}
