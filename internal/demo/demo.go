// Package demo runs the scripted walk through both containers and prints
// each container's rendering together with its size.
package demo

import (
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"containers/arraylist"
	"containers/hashset"
)

// Caption formats, keyed by their English text.
const (
	captionSet          = "HashSet: %s, Size: %d"
	captionSetRemoved   = "After removal: %s, Size: %d"
	captionList         = "ArrayList: %s, Size: %d"
	captionListInserted = "After insert at index: %s, Size: %d"
	captionListGet      = "Element at index %d (get): %v"
	captionListRemoved  = "After removal from list: %s, Size: %d"
	captionListAddAll   = "After addAll: %s, Size: %d"
)

var captions = catalog.NewBuilder(catalog.Fallback(language.English))

func init() {
	en := map[string]string{
		captionListRemoved: "After removal: %s, Size: %d",
	}
	ru := map[string]string{
		captionSet:          "HashSet: %s, Size: %d",
		captionSetRemoved:   "После удаления: %s, Size: %d",
		captionList:         "ArrayList: %s, Size: %d",
		captionListInserted: "После вставки по индексу: %s, Size: %d",
		captionListGet:      "Элемент с индексом %d (get): %v",
		captionListRemoved:  "После удаления: %s, Size: %d",
		captionListAddAll:   "После addAll: %s, Size: %d",
	}
	for key, msg := range en {
		if err := captions.SetString(language.English, key, msg); err != nil {
			panic(err)
		}
	}
	for key, msg := range ru {
		if err := captions.SetString(language.Russian, key, msg); err != nil {
			panic(err)
		}
	}
}

// Options configures a demo run.
type Options struct {
	Lang         language.Tag
	SetCapacity  int
	Hasher       hashset.Hasher[string]
	ListCapacity int
	Logger       *slog.Logger
}

func (o *Options) setDefaults() {
	if o.Lang == language.Und {
		o.Lang = language.English
	}
	if o.SetCapacity == 0 {
		o.SetCapacity = hashset.DefaultCapacity
	}
	if o.Hasher == nil {
		o.Hasher = hashset.Strings()
	}
	if o.ListCapacity == 0 {
		o.ListCapacity = arraylist.DefaultCapacity
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
}

// ParseLang resolves a language name such as "en" or "ru".
func ParseLang(name string) (language.Tag, error) {
	tag, err := language.Parse(name)
	if err != nil {
		return language.Und, fmt.Errorf("invalid language %q: %w", name, err)
	}
	return tag, nil
}

// Run executes the script and writes one line per step to w.
func Run(w io.Writer, opts Options) error {
	opts.setDefaults()
	p := message.NewPrinter(opts.Lang, message.Catalog(captions))
	log := opts.Logger.With("component", "demo")

	line := func(key string, args ...any) error {
		_, err := fmt.Fprintln(w, p.Sprintf(key, args...))
		return err
	}

	set := hashset.NewWithCapacity(opts.Hasher, opts.SetCapacity)
	for _, v := range []string{"first", "second", "third"} {
		set.Insert(v)
		log.Debug("set insert", "value", v, "bucket", set.Index(v))
	}
	if err := line(captionSet, set.String(), set.Size()); err != nil {
		return err
	}

	removed := set.Remove("first")
	log.Debug("set remove", "value", "first", "removed", removed)
	if err := line(captionSetRemoved, set.String(), set.Size()); err != nil {
		return err
	}

	list := arraylist.NewWithCapacity[int](opts.ListCapacity)
	list.AddAll(1, 2, 3)
	if err := line(captionList, list.String(), list.Size()); err != nil {
		return err
	}

	if err := list.AddAt(1, 99); err != nil {
		return fmt.Errorf("insert at index 1: %w", err)
	}
	if err := line(captionListInserted, list.String(), list.Size()); err != nil {
		return err
	}

	got, err := list.Get(1)
	if err != nil {
		return fmt.Errorf("get index 1: %w", err)
	}
	if err := line(captionListGet, 1, got); err != nil {
		return err
	}

	first, err := list.Remove(0)
	if err != nil {
		return fmt.Errorf("remove index 0: %w", err)
	}
	log.Debug("list remove", "index", 0, "value", first)
	if err := line(captionListRemoved, list.String(), list.Size()); err != nil {
		return err
	}

	list.AddAll(1, 2, 3, 4, 5)
	log.Debug("list grown", "size", list.Size(), "capacity", list.Cap())
	return line(captionListAddAll, list.String(), list.Size())
}
