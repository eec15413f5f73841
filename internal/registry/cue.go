package registry

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"github.com/espdhub/qualimport/internal/value"
)

// The standard ESPD definition set, embedded at build time. The CLI can
// override it with an external definitions directory (--defs).
//
//go:embed defs/*.cue
var defsFS embed.FS

// CompileError is a definition-file error with CUE position information.
type CompileError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	firstErr := errs[0]
	positions := errors.Positions(firstErr)
	if len(positions) > 0 {
		return &CompileError{
			Field:   "cue",
			Message: firstErr.Error(),
			Pos:     positions[0],
		}
	}

	return err
}

// Load builds the Registry from the embedded standard definition set.
func Load() (*Registry, error) {
	var files []cueFile
	err := fs.WalkDir(defsFS, "defs", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".cue" {
			return nil
		}
		data, err := defsFS.ReadFile(path)
		if err != nil {
			return err
		}
		files = append(files, cueFile{name: path, data: data})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read embedded definitions: %w", err)
	}
	return loadFiles(files)
}

// LoadDir builds the Registry from an external definitions directory.
// All .cue files found (recursively) are unified into one definition set.
func LoadDir(dir string) (*Registry, error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("definitions directory not found: %s", dir)
	}
	if err != nil {
		return nil, fmt.Errorf("access definitions directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", dir)
	}

	paths, err := FindCUEFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("scan definitions directory: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no CUE files found in %s", dir)
	}

	var files []cueFile
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		files = append(files, cueFile{name: path, data: data})
	}
	return loadFiles(files)
}

// FindCUEFiles walks the directory and returns all .cue file paths.
func FindCUEFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && filepath.Ext(path) == ".cue" {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

type cueFile struct {
	name string
	data []byte
}

// loadFiles compiles every definition file and unifies them into a single
// CUE value. Files contribute entries under the shared top-level structs
// (requirements, groups, aliases), so unification merges disjoint keys and
// rejects conflicting redefinitions.
func loadFiles(files []cueFile) (*Registry, error) {
	ctx := cuecontext.New()

	merged := ctx.CompileString("{}")
	for _, f := range files {
		v := ctx.CompileBytes(f.data, cue.Filename(f.name))
		if err := v.Err(); err != nil {
			return nil, formatCUEError(err)
		}
		merged = merged.Unify(v)
	}
	if err := merged.Err(); err != nil {
		return nil, formatCUEError(err)
	}
	if err := merged.Validate(); err != nil {
		return nil, formatCUEError(err)
	}

	set, err := extractSet(merged)
	if err != nil {
		return nil, err
	}
	return New(set)
}

// extractSet pulls the definition Set out of a compiled CUE value.
func extractSet(v cue.Value) (Set, error) {
	var set Set

	reqsVal := v.LookupPath(cue.ParsePath("requirements"))
	if reqsVal.Exists() {
		iter, err := reqsVal.Fields()
		if err != nil {
			return set, formatCUEError(err)
		}
		for iter.Next() {
			def, err := parseRequirement(fieldLabel(iter), iter.Value())
			if err != nil {
				return set, err
			}
			set.Requirements = append(set.Requirements, def)
		}
	}

	groupsVal := v.LookupPath(cue.ParsePath("groups"))
	if groupsVal.Exists() {
		iter, err := groupsVal.Fields()
		if err != nil {
			return set, formatCUEError(err)
		}
		for iter.Next() {
			def, err := parseGroup(fieldLabel(iter), iter.Value())
			if err != nil {
				return set, err
			}
			set.Groups = append(set.Groups, def)
		}
	}

	var err error
	set.RequirementAliases, err = parseAliases(v, "aliases.requirements")
	if err != nil {
		return set, err
	}
	set.GroupAliases, err = parseAliases(v, "aliases.groups")
	if err != nil {
		return set, err
	}

	if len(set.Requirements) == 0 && len(set.Groups) == 0 {
		return set, &CompileError{
			Field:   "definitions",
			Message: "no requirement or group definitions found",
		}
	}

	return set, nil
}

// fieldLabel returns the unquoted label of the current iterator field.
// Definition ids are quoted string labels (UUIDs).
func fieldLabel(iter *cue.Iterator) string {
	sel := iter.Selector()
	if sel.Type() == cue.StringLabel {
		return sel.Unquoted()
	}
	return sel.String()
}

func parseRequirement(id string, v cue.Value) (RequirementDefinition, error) {
	def := RequirementDefinition{ID: id}

	descVal := v.LookupPath(cue.ParsePath("description"))
	if !descVal.Exists() {
		return def, &CompileError{
			Field:   "description",
			Message: fmt.Sprintf("requirement %q: description is required", id),
			Pos:     v.Pos(),
		}
	}
	desc, err := descVal.String()
	if err != nil {
		return def, formatCUEError(err)
	}
	def.Description = desc

	respVal := v.LookupPath(cue.ParsePath("response"))
	if !respVal.Exists() {
		return def, &CompileError{
			Field:   "response",
			Message: fmt.Sprintf("requirement %q: response type is required", id),
			Pos:     v.Pos(),
		}
	}
	resp, err := respVal.String()
	if err != nil {
		return def, formatCUEError(err)
	}
	def.Response = value.ResponseType(resp)

	fieldsVal := v.LookupPath(cue.ParsePath("fields"))
	if fieldsVal.Exists() {
		fieldsIter, err := fieldsVal.List()
		if err != nil {
			return def, formatCUEError(err)
		}
		for fieldsIter.Next() {
			field, err := fieldsIter.Value().String()
			if err != nil {
				return def, formatCUEError(err)
			}
			def.Fields = append(def.Fields, field)
		}
	}

	return def, nil
}

func parseGroup(id string, v cue.Value) (GroupDefinition, error) {
	def := GroupDefinition{ID: id}

	unboundedVal := v.LookupPath(cue.ParsePath("unbounded"))
	if unboundedVal.Exists() {
		unbounded, err := unboundedVal.Bool()
		if err != nil {
			return def, formatCUEError(err)
		}
		def.Unbounded = unbounded
	}

	return def, nil
}

func parseAliases(v cue.Value, path string) (map[string]string, error) {
	aliasVal := v.LookupPath(cue.ParsePath(path))
	if !aliasVal.Exists() {
		return nil, nil
	}

	iter, err := aliasVal.Fields()
	if err != nil {
		return nil, formatCUEError(err)
	}

	aliases := make(map[string]string)
	for iter.Next() {
		canonical, err := iter.Value().String()
		if err != nil {
			return nil, formatCUEError(err)
		}
		aliases[fieldLabel(iter)] = canonical
	}
	return aliases, nil
}
