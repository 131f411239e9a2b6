// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dfmora/car2data/gen/ent/generatedform"
	"github.com/dfmora/car2data/gen/ent/predicate"
)

// GeneratedFormDelete is the builder for deleting a GeneratedForm entity.
type GeneratedFormDelete struct {
	config
	hooks    []Hook
	mutation *GeneratedFormMutation
}

// Where appends a list predicates to the GeneratedFormDelete builder.
func (_d *GeneratedFormDelete) Where(ps ...predicate.GeneratedForm) *GeneratedFormDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *GeneratedFormDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GeneratedFormDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *GeneratedFormDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(generatedform.Table, sqlgraph.NewFieldSpec(generatedform.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// GeneratedFormDeleteOne is the builder for deleting a single GeneratedForm entity.
type GeneratedFormDeleteOne struct {
	_d *GeneratedFormDelete
}

// Where appends a list predicates to the GeneratedFormDelete builder.
func (_d *GeneratedFormDeleteOne) Where(ps ...predicate.GeneratedForm) *GeneratedFormDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *GeneratedFormDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{generatedform.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GeneratedFormDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
