package treediff

import (
	"fmt"
	"sort"

	"github.com/mitchellh/copystructure"
)

// Diff computes the patch that turns the value src into the value dst.
// inputs must be decoded-JSON go values (see package documentation), and
// are never mutated. an empty patch comes back as a nil slice.
// the only error condition is a value outside the JSON type universe,
// reported as a *ValidationError naming the offending path
func Diff(src, dst interface{}, opts ...DiffOption) (Patch, error) {
	cfg := &DiffConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	d := &differ{cfg: cfg}
	if err := d.compare(src, dst, RootPath); err != nil {
		return nil, err
	}
	return d.patch, nil
}

// DiffConfig are any possible configuration parameters for calculating diffs
type DiffConfig struct {
	// Provide a non-nil stats pointer & Diff will populate it with counts
	// from the diff process
	Stats *Stats
	// If true, values carried by add & replace operations are deep copies
	// instead of references into dst, so dst may be mutated after diffing
	// without corrupting the patch
	CopyValues bool
}

// DiffOption is a function that adjusts a config, zero or more DiffOptions
// can be passed to the Diff function
type DiffOption func(cfg *DiffConfig)

// OptionSetStats will set the passed-in stats pointer when Diff is called
func OptionSetStats(st *Stats) DiffOption {
	return func(cfg *DiffConfig) {
		cfg.Stats = st
	}
}

// OptionCopyValues makes emitted operations carry deep copies of dst
// subtrees instead of aliasing them
func OptionCopyValues(cfg *DiffConfig) {
	cfg.CopyValues = true
}

// ValidationError marks a value that isn't JSON-representable, like a func,
// channel, or struct that slipped into a document tree
type ValidationError struct {
	// pointer to where the value sits in the document
	Path string
	// the offending value
	Value interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("treediff: unsupported value of type %T at %q", e.Value, e.Path)
}

// differ accumulates operations while walking a pair of documents
type differ struct {
	cfg   *DiffConfig
	patch Patch
}

// compare walks src & dst in tandem, appending operations addressed relative
// to path:
//
//  1. composite values that are reference-identical are skipped wholesale,
//     a cheap win when documents share unchanged subtrees
//  2. values of differing kinds replace with no further descent
//  3. arrays compare position by position
//  4. objects compare key by key in sorted key order
//  5. scalars compare by value
func (d *differ) compare(src, dst interface{}, path string) error {
	sk, dk := kindOf(src), kindOf(dst)
	if sk == kindInvalid {
		return &ValidationError{Path: path, Value: src}
	}
	if dk == kindInvalid {
		return &ValidationError{Path: path, Value: dst}
	}

	if sk != dk {
		return d.replace(path, dst)
	}

	switch sk {
	case kindArray:
		if sameComposite(src, dst) {
			return nil
		}
		return d.compareArrays(src.([]interface{}), dst.([]interface{}), path)
	case kindObject:
		if sameComposite(src, dst) {
			return nil
		}
		return d.compareObjects(src.(map[string]interface{}), dst.(map[string]interface{}), path)
	case kindNull:
		// both null, kinds already matched
		return nil
	case kindNumber:
		if !numbersEqual(src, dst) {
			return d.replace(path, dst)
		}
		return nil
	default:
		// string & bool are comparable as-is
		if src != dst {
			return d.replace(path, dst)
		}
		return nil
	}
}

// compareArrays is a naive positional comparison: elements pair up by index,
// with no matching or shift detection. indices present on only one side are
// trailing by construction: removes when src is longer, adds when dst is.
// trailing removes are emitted in descending index order so each one stays
// valid as the array shrinks under a front-to-back applier
func (d *differ) compareArrays(src, dst []interface{}, path string) error {
	shared := len(src)
	if len(dst) < shared {
		shared = len(dst)
	}

	for i := 0; i < shared; i++ {
		if err := d.compare(src[i], dst[i], AppendIndex(path, i)); err != nil {
			return err
		}
	}
	for i := len(src) - 1; i >= shared; i-- {
		d.remove(AppendIndex(path, i))
	}
	for i := shared; i < len(dst); i++ {
		if err := d.add(AppendIndex(path, i), dst[i]); err != nil {
			return err
		}
	}
	return nil
}

// compareObjects walks src keys first, recursing into keys both sides share
// & removing keys dst lacks, then adds keys only dst has. go maps have no
// iteration order, so both passes sort keys to keep output deterministic
func (d *differ) compareObjects(src, dst map[string]interface{}, path string) error {
	srcKeys := make([]string, 0, len(src))
	for key := range src {
		srcKeys = append(srcKeys, key)
	}
	sort.Strings(srcKeys)

	for _, key := range srcKeys {
		dstVal, ok := dst[key]
		if !ok {
			d.remove(AppendKey(path, key))
			continue
		}
		if err := d.compare(src[key], dstVal, AppendKey(path, key)); err != nil {
			return err
		}
	}

	dstKeys := make([]string, 0, len(dst))
	for key := range dst {
		if _, ok := src[key]; !ok {
			dstKeys = append(dstKeys, key)
		}
	}
	sort.Strings(dstKeys)

	for _, key := range dstKeys {
		if err := d.add(AppendKey(path, key), dst[key]); err != nil {
			return err
		}
	}
	return nil
}

func (d *differ) add(path string, value interface{}) error {
	value, err := d.carry(value)
	if err != nil {
		return err
	}
	d.patch = append(d.patch, Operation{Op: OpAdd, Path: path, Value: value})
	if d.cfg.Stats != nil {
		d.cfg.Stats.Adds++
	}
	return nil
}

func (d *differ) remove(path string) {
	d.patch = append(d.patch, Operation{Op: OpRemove, Path: path})
	if d.cfg.Stats != nil {
		d.cfg.Stats.Removes++
	}
}

func (d *differ) replace(path string, value interface{}) error {
	value, err := d.carry(value)
	if err != nil {
		return err
	}
	d.patch = append(d.patch, Operation{Op: OpReplace, Path: path, Value: value})
	if d.cfg.Stats != nil {
		d.cfg.Stats.Replaces++
	}
	return nil
}

// carry prepares a dst subtree for inclusion in an operation, deep copying
// when OptionCopyValues is set
func (d *differ) carry(value interface{}) (interface{}, error) {
	if !d.cfg.CopyValues {
		return value, nil
	}
	cp, err := copystructure.Copy(value)
	if err != nil {
		return nil, fmt.Errorf("treediff: copying operation value: %w", err)
	}
	return cp, nil
}
