package polarity

import (
	"golang.org/x/exp/slices"
	"strconv"
	"strings"
)

const (
	AncestralAlleleKey = "AA"
	AlleleCountKey     = "AC"
)

// NeedsSwap reports whether v is biallelic and its AA annotation names the
// current alternate allele (case-insensitive).
func NeedsSwap(v Variant) bool {
	if v.NAlleles() != 2 {
		return false
	}
	aa, found := v.Info.Get(AncestralAlleleKey)
	if !found {
		return false
	}
	return strings.EqualFold(v.Alleles[1].Bases, aa)
}

// Normalize swaps REF and ALT when the ancestral allele is the current ALT.
// Called genotypes are remapped to the new alleles and have their PL
// reversed, and AC is recomputed as the number of calls carrying the old
// reference. Records that do not need a swap are returned unchanged. The
// input is never modified.
func Normalize(v Variant) Variant {
	if !NeedsSwap(v) {
		return v
	}
	oldRef, oldAlt := v.Alleles[0], v.Alleles[1]
	newRef := Allele{Bases: oldAlt.Bases, IsRef: true}
	newAlt := Allele{Bases: oldRef.Bases, IsRef: false}

	ans := v
	ans.Alleles = []Allele{newRef, newAlt}
	ans.Format = slices.Clone(v.Format)
	ans.Genotypes = make([]Genotype, len(v.Genotypes))

	var i, j, ac int
	var g Genotype
	for i = range v.Genotypes {
		for j = range v.Genotypes[i].Alleles {
			if v.Genotypes[i].Alleles[j] == oldRef {
				ac++
			}
		}

		if !v.Genotypes[i].IsCalled() {
			ans.Genotypes[i] = v.Genotypes[i]
			continue
		}

		g = v.Genotypes[i].clone()
		for j = range g.Alleles {
			switch g.Alleles[j] {
			case oldAlt:
				g.Alleles[j] = newRef
			case oldRef:
				g.Alleles[j] = newAlt
			}
		}
		if g.HasPL() {
			reversePL(g.PL)
		}
		ans.Genotypes[i] = g
	}

	ans.Info = v.Info.With(AlleleCountKey, strconv.Itoa(ac))
	return ans
}

// reversePL reverses pl in place. This matches the hom-ref/het/hom-alt
// ordering of a biallelic site after a REF/ALT swap and is not a valid
// remapping for more than two alleles.
func reversePL(pl []int) {
	for i, j := 0, len(pl)-1; i < j; i, j = i+1, j-1 {
		pl[i], pl[j] = pl[j], pl[i]
	}
}
