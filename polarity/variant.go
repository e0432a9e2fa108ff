package polarity

import (
	"golang.org/x/exp/slices"
)

// Allele is compared by value: two alleles are equal only if both the
// bases and the reference flag match.
type Allele struct {
	Bases string
	IsRef bool
}

// NoCall is the allele stored for a missing call ('.') in a genotype.
var NoCall = Allele{Bases: "."}

func (a Allele) String() string {
	return a.Bases
}

type Genotype struct {
	Sample  string
	Alleles []Allele
	Phase   []bool
	PL      []int    // nil when the sample has no usable PL
	Data    []string // FORMAT values aligned with Variant.Format, GT at index 0 is a placeholder
}

// IsCalled reports whether any allele in the genotype is not a no-call.
func (g Genotype) IsCalled() bool {
	for i := range g.Alleles {
		if g.Alleles[i] != NoCall {
			return true
		}
	}
	return false
}

func (g Genotype) HasPL() bool {
	return g.PL != nil
}

// clone returns a copy of g that shares no slices with it.
func (g Genotype) clone() Genotype {
	g.Alleles = slices.Clone(g.Alleles)
	g.Phase = slices.Clone(g.Phase)
	g.PL = slices.Clone(g.PL)
	g.Data = slices.Clone(g.Data)
	return g
}

// Variant is a single VCF record. Alleles[0] is the reference.
type Variant struct {
	Chr       string
	Pos       int
	Id        string
	Alleles   []Allele
	Qual      float64
	Filter    string
	Info      Attributes
	Format    []string
	Genotypes []Genotype
}

func (v Variant) NAlleles() int {
	return len(v.Alleles)
}

func (v Variant) Ref() Allele {
	return v.Alleles[0]
}
