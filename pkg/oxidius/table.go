package oxidius

// DefaultTableBuckets and DefaultTableRowSize size the default dedup
// table: a prime bucket count with a small fixed row width.
const (
	DefaultTableBuckets = 41
	DefaultTableRowSize = 4
)

// Table is the two-level open-addressed dedup structure: M buckets, each
// a fixed row of N slots, each slot either empty or holding one
// Expression. It holds a sink Scope, supplied by the caller, into which
// every stored Expression is dropped on teardown, so a transform call's
// full node graph is reclaimed when the table's lifetime ends.
type Table struct {
	m, n   int
	data   [][]Expression
	valid  [][]bool
	unique int
	sink   *Scope
}

// NewTable builds an m-bucket, n-slots-per-bucket dedup table whose
// eventual End() drops every still-valid expression into sink — normally
// the same working Scope the caller is using for matches and applies
// during this transform call, so a single scope teardown reclaims
// everything the call allocated.
func NewTable(m, n int, sink *Scope) *Table {
	data := make([][]Expression, m)
	valid := make([][]bool, m)
	for i := range data {
		data[i] = make([]Expression, n)
		valid[i] = make([]bool, n)
	}
	return &Table{m: m, n: n, data: data, valid: valid, sink: sink}
}

// NewDefaultTable builds a table sized DefaultTableBuckets x
// DefaultTableRowSize.
func NewDefaultTable(sink *Scope) *Table {
	return NewTable(DefaultTableBuckets, DefaultTableRowSize, sink)
}

// FlatAt returns the expression stored at flat index i. It is undefined
// (may return a zero Expression) if the slot is not valid.
func (t *Table) FlatAt(i int) Expression {
	return t.data[i/t.n][i%t.n]
}

// Push inserts expr, returning the flat index of the slot it occupies —
// its own new slot if no equal expression was already present, or the
// slot of the equal expression that was. isNew tells the caller which
// happened, so callers that drive a fixpoint (only reentering on
// genuinely new information) and callers that just want a complete
// record of everything reachable from a subtree (including rediscovered
// duplicates, so two structurally identical but independently-explored
// subtrees each see the full set of stored alternatives) can apply
// different policies from the same call. Probing stops at the first
// empty slot in the bucket, so an equal expression stored after a slot
// that Clear has emptied is not found, and expr is stored again in the
// empty slot (reported as new). If every slot in the bucket is
// occupied by an unequal expression, Push returns a *BucketOverflowError
// — a diagnostic, not a correctness error.
func (t *Table) Push(expr Expression) (idx int, isNew bool, err error) {
	h := int(QuickHashExpr(expr) % uint64(t.m))
	for i := 0; i < t.n; i++ {
		if !t.valid[h][i] {
			t.data[h][i] = expr
			t.valid[h][i] = true
			flat := h*t.n + i
			t.unique++
			recorder.SetTableUnique(t.unique)
			return flat, true, nil
		}
		if EqualExpr(t.data[h][i], expr) {
			return h*t.n + i, false, nil
		}
	}
	tracef("bucket %d overflow (row size %d)", h, t.n)
	recorder.IncTableOverflow()
	return -1, false, &BucketOverflowError{Bucket: h}
}

// Clear marks every index in pm invalid, decrementing unique for each
// index that was actually valid. Clear is idempotent on indices already
// cleared (the transform engine relies on this).
func (t *Table) Clear(pm []int) {
	for _, idx := range pm {
		i, j := idx/t.n, idx%t.n
		if t.valid[i][j] {
			t.valid[i][j] = false
			t.unique--
		}
	}
	recorder.SetTableUnique(t.unique)
}

// Unique returns the number of occupied slots.
func (t *Table) Unique() int { return t.unique }

// RowOccupancy returns how many of row's N slots are occupied, for
// tuning and BucketOverflow diagnostics.
func (t *Table) RowOccupancy(row int) int {
	count := 0
	for _, v := range t.valid[row] {
		if v {
			count++
		}
	}
	return count
}

// End drops every currently-valid expression into the table's sink scope
// and tears that scope down, reclaiming every node the table ever
// accepted via Push.
func (t *Table) End() {
	for i := range t.data {
		for j := range t.data[i] {
			if t.valid[i][j] {
				t.sink.DropExpression(t.data[i][j])
				t.valid[i][j] = false
			}
		}
	}
	t.unique = 0
	t.sink.End()
}
