package assets

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/filare/engine/assets/loaders"
	"github.com/spaghettifunk/filare/engine/core"
	"github.com/spaghettifunk/filare/engine/renderer/metadata"
)

// AssetManager loads meshes from disk and watches the loaded files for
// changes. The watcher goroutine only records which files changed; the
// engine drains those records once per frame on the main thread, so
// nothing observes a reload mid-frame.
type AssetManager struct {
	meshLoader loaders.MeshLoader

	mutex    sync.Mutex
	modified map[string]struct{}

	fsnotify *fsnotify.Watcher
	done     chan struct{}
	isClosed bool
}

func NewAssetManager() (*AssetManager, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &AssetManager{
		modified: make(map[string]struct{}),
		fsnotify: fsWatch,
		done:     make(chan struct{}),
	}, nil
}

func (am *AssetManager) Initialize() error {
	go am.start()
	return nil
}

func (am *AssetManager) Shutdown() error {
	if am.isClosed {
		return nil
	}
	am.isClosed = true
	close(am.done)
	return nil
}

// LoadMesh loads the mesh at path and registers it for change
// notifications so edits on disk show up as ASSET_MODIFIED events.
func (am *AssetManager) LoadMesh(path string) (*metadata.Mesh, error) {
	mesh, err := am.meshLoader.Load(path)
	if err != nil {
		return nil, err
	}

	// Watch the containing directory; editors commonly replace files
	// instead of writing them in place, which unregisters a per-file
	// watch.
	if err := am.fsnotify.Add(filepath.Dir(path)); err != nil {
		core.LogWarn("cannot watch %s for changes: %v", path, err)
	}

	core.LogInfo("loaded mesh %q: %d vertices, %d faces", mesh.Name, mesh.VertexCount(), mesh.FaceCount())
	return mesh, nil
}

// PumpNotifications fires an ASSET_MODIFIED event for every file that
// changed since the last call. Must be invoked from the frame loop.
func (am *AssetManager) PumpNotifications() {
	am.mutex.Lock()
	changed := am.modified
	am.modified = make(map[string]struct{})
	am.mutex.Unlock()

	for path := range changed {
		core.EventFire(core.EventContext{
			Type: core.EVENT_CODE_ASSET_MODIFIED,
			Data: &core.AssetEvent{Path: path},
		})
	}
}

func (am *AssetManager) start() {
	for {
		select {
		case e, ok := <-am.fsnotify.Events:
			if !ok {
				return
			}
			if e.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0 && isMeshFile(e.Name) {
				am.mutex.Lock()
				am.modified[e.Name] = struct{}{}
				am.mutex.Unlock()
			}

		case err, ok := <-am.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("asset watcher: %v", err)

		case <-am.done:
			am.fsnotify.Close()
			return
		}
	}
}

func isMeshFile(path string) bool {
	switch filepath.Ext(path) {
	case ".obj", ".mesh":
		return true
	default:
		return false
	}
}
