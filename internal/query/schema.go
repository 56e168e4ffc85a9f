package query

import (
	"fmt"
	"slices"

	"github.com/osse101/SmartShelf_Go/internal/domain"
)

// Schema lists the known columns of every collection. Statements that name
// anything outside the schema are rejected before reaching a backend, which
// also keeps identifiers out of generated SQL unless whitelisted.
type Schema map[string][]string

// DefaultSchema returns the Smart Shelf collections
func DefaultSchema() Schema {
	return Schema{
		domain.CollectionContainers: {
			domain.FieldID,
			domain.FieldOwnerID,
			domain.FieldName,
			domain.FieldEmptyWeightGrams,
			domain.FieldCreatedAt,
			domain.FieldLastUpdatedAt,
		},
		domain.CollectionShelfItems: {
			domain.FieldID,
			domain.FieldOwnerID,
			domain.FieldContainerID,
			domain.FieldFoodName,
			domain.FieldCaloriesPerGram,
			domain.FieldCurrentWeightGrams,
			domain.FieldMaxWeightGrams,
			domain.FieldDeviceID,
			domain.FieldCreatedAt,
			domain.FieldLastUpdatedAt,
		},
		domain.CollectionFeedbackComments: {
			domain.FieldID,
			domain.FieldUserID,
			domain.FieldFeedbackType,
			domain.FieldTitle,
			domain.FieldMessage,
			domain.FieldEmail,
			domain.FieldCreatedAt,
			domain.FieldLastUpdatedAt,
		},
	}
}

// Columns returns the columns of a collection
func (s Schema) Columns(collection string) ([]string, error) {
	cols, ok := s[collection]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCollection, collection)
	}
	return cols, nil
}

// HasColumn reports whether field belongs to collection
func (s Schema) HasColumn(collection, field string) bool {
	return slices.Contains(s[collection], field)
}

func (s Schema) checkFields(collection string, fields ...string) error {
	if _, err := s.Columns(collection); err != nil {
		return err
	}
	for _, f := range fields {
		if !s.HasColumn(collection, f) {
			return fmt.Errorf("%w: %s.%s", domain.ErrUnknownField, collection, f)
		}
	}
	return nil
}

func filterFields(filters []Filter) []string {
	out := make([]string, len(filters))
	for i, f := range filters {
		out[i] = f.Field
	}
	return out
}

// ValidateSelect checks every collection and field a select names
func (s Schema) ValidateSelect(stmt SelectStatement) error {
	if err := s.checkFields(stmt.Collection, stmt.Fields...); err != nil {
		return err
	}
	if err := s.checkFields(stmt.Collection, filterFields(stmt.Filters)...); err != nil {
		return err
	}
	for _, o := range stmt.Orders {
		if err := s.checkFields(stmt.Collection, o.Field); err != nil {
			return err
		}
	}
	for _, j := range stmt.Joins {
		if err := s.checkFields(j.Collection, j.Fields...); err != nil {
			return err
		}
		fkOwner := stmt.Collection
		if j.Kind == OneToMany {
			fkOwner = j.Collection
		}
		if err := s.checkFields(fkOwner, j.ForeignKey); err != nil {
			return err
		}
	}
	return nil
}

// ValidateInsert checks the fields of every inserted record
func (s Schema) ValidateInsert(stmt InsertStatement) error {
	if _, err := s.Columns(stmt.Collection); err != nil {
		return err
	}
	for _, rec := range stmt.Records {
		for field := range rec {
			if err := s.checkFields(stmt.Collection, field); err != nil {
				return err
			}
		}
	}
	return nil
}

// ValidateUpdate checks patch and filter fields and rejects unfiltered updates
func (s Schema) ValidateUpdate(stmt UpdateStatement) error {
	if err := s.checkFields(stmt.Collection, filterFields(stmt.Filters)...); err != nil {
		return err
	}
	if len(stmt.Filters) == 0 {
		return domain.ErrUnfilteredWrite
	}
	for field := range stmt.Patch {
		if err := s.checkFields(stmt.Collection, field); err != nil {
			return err
		}
	}
	return nil
}

// ValidateDelete checks filter fields and rejects unfiltered deletes
func (s Schema) ValidateDelete(stmt DeleteStatement) error {
	if err := s.checkFields(stmt.Collection, filterFields(stmt.Filters)...); err != nil {
		return err
	}
	if len(stmt.Filters) == 0 {
		return domain.ErrUnfilteredWrite
	}
	return nil
}
