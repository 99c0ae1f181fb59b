//
// report.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package scratch

import (
	"fmt"
	"io"
	"math/bits"

	"github.com/markkurossi/fhe"
	"github.com/markkurossi/tabulate"
)

// Report renders the plan layout as a table: one row per segment with
// its replication count, total byte size, alignment, and offset in
// the scratch block, followed by the resolved plan total.
func (p *Plan) Report(w io.Writer) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Segment").SetAlign(tabulate.ML)
	tab.Header("Copies").SetAlign(tabulate.MR)
	tab.Header("Size").SetAlign(tabulate.MR)
	tab.Header("Align").SetAlign(tabulate.MR)
	tab.Header("Offset").SetAlign(tabulate.MR)

	var off uint64
	var poisoned bool
	for _, seg := range p.segments {
		row := tab.Row()
		row.Column(seg.Name)

		copies := 1
		if seg.PerWorker {
			copies = p.workers
		}
		row.Column(fmt.Sprintf("%d", copies))

		size, align, status := p.segmentReq(seg).Resolve()
		if poisoned || status != fhe.ScratchValid {
			if status != fhe.ScratchValid {
				row.Column(status.String())
			} else {
				row.Column("")
			}
			row.Column("")
			row.Column("")
			poisoned = true
			continue
		}
		start, ok := alignUp(off, align)
		if ok {
			var carry uint64
			off, carry = bits.Add64(start, size, 0)
			ok = carry == 0
		}
		if !ok {
			row.Column(fhe.ScratchSizeOverflow.String())
			row.Column("")
			row.Column("")
			poisoned = true
			continue
		}
		row.Column(fmt.Sprintf("%d", size))
		row.Column(fmt.Sprintf("%d", align))
		row.Column(fmt.Sprintf("%d", start))
	}

	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column(fmt.Sprintf("%s/%d", p.mode, p.workers)).
		SetFormat(tabulate.FmtBold)

	size, align, status := p.Resolve()
	if status != fhe.ScratchValid {
		row.Column(status.String()).SetFormat(tabulate.FmtBold)
		row.Column("")
		row.Column("")
	} else {
		row.Column(fmt.Sprintf("%d", size)).SetFormat(tabulate.FmtBold)
		row.Column(fmt.Sprintf("%d", align)).SetFormat(tabulate.FmtBold)
		row.Column("")
	}

	tab.Print(w)
}
