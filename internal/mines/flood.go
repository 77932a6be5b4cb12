package mines

// celltodo is a FIFO of cell indices threaded through next. An index must not
// be added while it is still queued.
type celltodo struct {
	next       []int
	head, tail int
}

func newCelltodo(n int) *celltodo {
	return &celltodo{next: make([]int, n), head: -1, tail: -1}
}

func (std *celltodo) add(i int) {
	if std.tail >= 0 {
		std.next[std.tail] = i
	} else {
		std.head = i
	}
	std.tail = i
	std.next[i] = -1
}

func (std *celltodo) pop() (int, bool) {
	if std.head < 0 {
		return 0, false
	}
	i := std.head
	std.head = std.next[i]
	if std.head < 0 {
		std.tail = -1
	}
	return i, true
}

// floodReveal opens the cell at row, column and, while opened cells have no
// mined neighbours, everything around them. Out-of-bounds, already revealed
// and mined cells are skipped. A cell is marked revealed when it is queued,
// so each index is processed at most once. It returns the number of cells
// opened.
func (b *Board) floodReveal(row, column int) int {
	std := newCelltodo(len(b.cells))
	opened := 0

	open := func(r, c int) {
		if !b.InBounds(r, c) {
			return
		}
		i := b.index(r, c)
		if b.cells[i].Revealed || b.cells[i].Mine {
			return
		}
		b.cells[i].Revealed = true
		b.covered--
		opened++
		std.add(i)
	}

	open(row, column)
	for i, ok := std.pop(); ok; i, ok = std.pop() {
		if b.cells[i].Adjacent != 0 {
			continue
		}
		r, c := i/b.Columns, i%b.Columns
		for _, d := range neighbourhood {
			open(r+d[0], c+d[1])
		}
	}
	return opened
}
