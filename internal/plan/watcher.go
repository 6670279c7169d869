package plan

import (
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher следит за файлом плана и перечитывает его в Store при изменении.
type Watcher struct {
	store *Store
	path  string
}

// NewWatcher создаёт наблюдатель за файлом плана
func NewWatcher(store *Store, path string) *Watcher {
	return &Watcher{store: store, path: path}
}

// StartWatching запускает наблюдение в фоне
func (w *Watcher) StartWatching() {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("Ошибка создания наблюдателя: %v", err)
		return
	}

	go func() {
		defer watcher.Close()

		var lastEvent time.Time

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != w.path {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
					if time.Since(lastEvent) < 2*time.Second {
						continue
					}
					lastEvent = time.Now()

					if _, err := w.store.LoadFile(w.path); err != nil {
						log.Printf("План изменён, но не перезагружен: %v", err)
						continue
					}
					log.Printf("План перезагружен: %s", w.path)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("Ошибка наблюдателя: %v", err)
			}
		}
	}()

	// Следим за каталогом: редакторы и rename при apply пересоздают файл
	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		log.Printf("Ошибка добавления каталога плана в наблюдатель: %v", err)
		return
	}

	log.Printf("Наблюдение за %s запущено", w.path)
}
