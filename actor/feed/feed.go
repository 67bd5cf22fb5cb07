package feed

import (
	"chartscope/dataset"

	"github.com/anthdm/hollywood/actor"
	"github.com/charmbracelet/log"
)

// Reload asks the feed to read its file again.
type Reload struct{}

type Loaded struct {
	Path    string
	Dataset *dataset.Dataset
}

type Failed struct {
	Path string
	Err  error
}

// Feed loads a dataset file off the frame loop and hands the result to the
// UI through eventCh. It loads once on start and again on every Reload.
type Feed struct {
	path    string
	eventCh chan any
}

func New(eventCh chan any, path string) actor.Producer {
	return func() actor.Receiver {
		return &Feed{
			path:    path,
			eventCh: eventCh,
		}
	}
}

func (f *Feed) Receive(c *actor.Context) {
	switch c.Message().(type) {
	case actor.Started, Reload:
		f.load()
	case actor.Stopped:
		close(f.eventCh)
	}
}

func (f *Feed) load() {
	ds, err := dataset.Load(f.path)
	if err != nil {
		log.Error("load dataset", "path", f.path, "err", err)
		f.eventCh <- Failed{Path: f.path, Err: err}
		return
	}
	log.Debug("dataset loaded", "path", f.path, "samples", ds.Len(), "series", len(ds.Series))
	f.eventCh <- Loaded{Path: f.path, Dataset: ds}
}
