//
// rngstat.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"hash"
	"os"
	"time"

	"github.com/markkurossi/fhe/csprng"
	"github.com/markkurossi/fhe/eval"
	"github.com/markkurossi/tabulate"
	"github.com/markkurossi/text/superscript"
	"golang.org/x/crypto/blake2b"
)

// ByteSize formats byte counts in human-readable units.
type ByteSize uint64

func (s ByteSize) String() string {
	if s > 1000*1000*1000*1000 {
		return fmt.Sprintf("%d TB", s/(1000*1000*1000*1000))
	} else if s > 1000*1000*1000 {
		return fmt.Sprintf("%d GB", s/(1000*1000*1000))
	} else if s > 1000*1000 {
		return fmt.Sprintf("%d MB", s/(1000*1000))
	} else if s > 1000 {
		return fmt.Sprintf("%d kB", s/1000)
	} else {
		return fmt.Sprintf("%d B", s)
	}
}

// draw produces count bytes from the generator in chunk-sized
// requests and returns the stream digest if digest is set.
func draw(c csprng.CSPRNG, count int64, chunk int, digest bool) (
	[]byte, error) {

	var h hash.Hash
	if digest {
		h, _ = blake2b.New256(nil)
	}
	buf := make([]byte, chunk)
	var drawn int64
	for drawn < count {
		n := chunk
		if left := count - drawn; left < int64(n) {
			n = int(left)
		}
		if err := csprng.Fill(c, buf[:n]); err != nil {
			return nil, err
		}
		if h != nil {
			h.Write(buf[:n])
		}
		drawn += int64(n)
	}
	if h == nil {
		return nil, nil
	}
	return h.Sum(nil), nil
}

func report(pool *eval.Pool, counts []*csprng.Counting,
	digests [][]byte, elapsed time.Duration) {

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Worker").SetAlign(tabulate.ML)
	tab.Header("Bytes").SetAlign(tabulate.MR)
	tab.Header("Throughput").SetAlign(tabulate.MR)
	if digests[0] != nil {
		tab.Header("BLAKE2b-256").SetAlign(tabulate.ML)
	}

	var total uint64
	for w, count := range counts {
		produced := count.Produced()
		total += produced

		row := tab.Row()
		row.Column("w" + superscript.Itoa(w))
		row.Column(ByteSize(produced).String())
		row.Column(throughput(produced, elapsed))
		if digests[w] != nil {
			row.Column(fmt.Sprintf("%x", digests[w]))
		}
	}

	row := tab.Row()
	row.Column(fmt.Sprintf("Total %s/%d", pool.Mode(), pool.Workers())).
		SetFormat(tabulate.FmtBold)
	row.Column(ByteSize(total).String()).SetFormat(tabulate.FmtBold)
	row.Column(throughput(total, elapsed)).SetFormat(tabulate.FmtBold)

	tab.Print(os.Stdout)
}

func throughput(count uint64, elapsed time.Duration) string {
	if elapsed <= 0 {
		return ""
	}
	rate := float64(count) / elapsed.Seconds()
	return fmt.Sprintf("%s/s", ByteSize(rate))
}
