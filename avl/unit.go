package avl

// Unit is the zero-sized aggregate intermediate for trees that do not use
// range aggregation. It is a distinct type so that "no aggregate" is a
// deliberate configuration with zero storage and zero work per node.
type Unit struct{}

// UnitAggregator is the trivial aggregate over Unit. It is the default
// choice of the collection facades; every operation is a no-op the
// compiler can erase.
type UnitAggregator[E any] struct{}

func (UnitAggregator[E]) Zero() Unit              { return Unit{} }
func (UnitAggregator[E]) Preprocess(E) Unit       { return Unit{} }
func (UnitAggregator[E]) Combine(Unit, Unit) Unit { return Unit{} }
func (UnitAggregator[E]) Postprocess(Unit) Unit   { return Unit{} }
