package schema

import (
	"context"
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
)

// Change reports what a reconciliation did to one collection.
type Change struct {
	Collection   string
	Created      bool
	AddedFields  []string
	MergedFields []string
	RulesChanged bool
	TypeChanged  bool
}

// Empty reports whether the live collection already matched its declaration.
func (c Change) Empty() bool {
	return !c.Created && len(c.AddedFields) == 0 && len(c.MergedFields) == 0 && !c.RulesChanged && !c.TypeChanged
}

// Reconciler brings catalog collections in line with their declarations
// without ever removing or renaming fields.
type Reconciler struct {
	catalog Catalog
	logger  *logrus.Logger
}

func NewReconciler(catalog Catalog, logger *logrus.Logger) *Reconciler {
	return &Reconciler{catalog: catalog, logger: logger}
}

// ReconcileAll validates every declaration, then reconciles them in order.
// It stops at the first failure.
func (r *Reconciler) ReconcileAll(ctx context.Context, declarations []Collection) ([]Change, error) {
	for i := range declarations {
		if err := declarations[i].Validate(); err != nil {
			return nil, err
		}
	}

	changes := make([]Change, 0, len(declarations))
	for i := range declarations {
		change, err := r.Reconcile(ctx, declarations[i])
		if err != nil {
			return changes, err
		}
		changes = append(changes, change)
	}
	return changes, nil
}

// Reconcile upserts one collection. Missing collections are created with an
// empty schema and their fields appended one by one. Existing fields get
// their options shallow-merged with the declared ones; rules and type are
// overwritten. Nothing is saved when the collection already matches.
func (r *Reconciler) Reconcile(ctx context.Context, decl Collection) (Change, error) {
	change := Change{Collection: decl.Name}
	if err := decl.Validate(); err != nil {
		return change, err
	}

	collection, err := r.catalog.FindByName(ctx, decl.Name)
	switch {
	case errors.Is(err, ErrNotFound):
		collection = &Collection{
			ID:      decl.ID,
			Name:    decl.Name,
			Type:    decl.Type,
			System:  decl.System,
			Fields:  []Field{},
			Indexes: append([]string{}, decl.Indexes...),
			Options: mergeOptions(decl.Options, nil),
		}
		change.Created = true
	case err != nil:
		return change, fmt.Errorf("find collection %s: %w", decl.Name, err)
	}

	if decl.Type != "" && collection.Type != decl.Type {
		collection.Type = decl.Type
		change.TypeChanged = !change.Created
	}

	if r.applyRules(collection, &decl) {
		change.RulesChanged = !change.Created
	}

	for _, declared := range decl.Fields {
		if err := r.applyField(collection, declared, &change); err != nil {
			return change, err
		}
	}

	if change.Empty() {
		r.logger.WithField("collection", decl.Name).Debug("Reconciler.Reconcile.unchanged")
		return change, nil
	}

	if err := r.catalog.Save(ctx, collection); err != nil {
		return change, fmt.Errorf("save collection %s: %w", decl.Name, err)
	}

	r.logger.WithFields(logrus.Fields{
		"collection":   decl.Name,
		"created":      change.Created,
		"addedFields":  change.AddedFields,
		"mergedFields": change.MergedFields,
		"rulesChanged": change.RulesChanged,
	}).Info("Reconciler.Reconcile.saved")

	return change, nil
}

func (r *Reconciler) applyRules(collection *Collection, decl *Collection) bool {
	changed := false
	set := func(dst *Rule, src Rule) {
		if !rulesEqual(*dst, src) {
			*dst = cloneRule(src)
			changed = true
		}
	}
	set(&collection.ListRule, decl.ListRule)
	set(&collection.ViewRule, decl.ViewRule)
	set(&collection.CreateRule, decl.CreateRule)
	set(&collection.UpdateRule, decl.UpdateRule)
	set(&collection.DeleteRule, decl.DeleteRule)
	return changed
}

func (r *Reconciler) applyField(collection *Collection, declared Field, change *Change) error {
	declaredOptions, err := normalizeOptions(declared.Options)
	if err != nil {
		return fmt.Errorf("%w: %s.%s: %v", ErrInvalidDeclaration, collection.Name, declared.Name, err)
	}

	idx := collection.fieldIndex(declared.Name)
	if idx < 0 {
		field := declared.clone()
		field.Options = declaredOptions
		if field.ID == "" {
			field.ID = collection.Name + "_" + field.Name
		}
		collection.Fields = append(collection.Fields, field)
		if !change.Created {
			change.AddedFields = append(change.AddedFields, declared.Name)
		}
		return nil
	}

	existing := &collection.Fields[idx]
	if len(declaredOptions) == 0 {
		return nil
	}
	existingOptions, err := normalizeOptions(existing.Options)
	if err != nil {
		return fmt.Errorf("field %s.%s: stored options: %w", collection.Name, existing.Name, err)
	}
	merged := mergeOptions(existingOptions, declaredOptions)
	if optionsEqual(merged, existingOptions) {
		return nil
	}

	if r.logger.IsLevelEnabled(logrus.DebugLevel) {
		r.logger.WithField("collection", collection.Name).
			Debugf("Reconciler.applyField.merge %s\nfrom: %sto: %s", existing.Name, spew.Sdump(existingOptions), spew.Sdump(merged))
	}
	existing.Options = merged
	change.MergedFields = append(change.MergedFields, existing.Name)
	return nil
}

// Drop deletes the named catalog entries in order, ignoring those already
// gone, and returns the names it removed. SQL tables are left untouched.
func (r *Reconciler) Drop(ctx context.Context, names ...string) ([]string, error) {
	var dropped []string
	for _, name := range names {
		err := r.catalog.Delete(ctx, name)
		if errors.Is(err, ErrNotFound) {
			r.logger.WithField("collection", name).Debug("Reconciler.Drop.absent")
			continue
		}
		if err != nil {
			return dropped, fmt.Errorf("drop collection %s: %w", name, err)
		}
		r.logger.WithField("collection", name).Info("Reconciler.Drop")
		dropped = append(dropped, name)
	}
	return dropped, nil
}

// DropOrder lists collection names in reverse declaration order.
func DropOrder(declarations []Collection) []string {
	names := make([]string, len(declarations))
	for i, c := range declarations {
		names[len(declarations)-1-i] = c.Name
	}
	return names
}
