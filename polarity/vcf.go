package polarity

import (
	"github.com/vertgenlab/gonomics/vcf"
	"golang.org/x/exp/slices"
	"strconv"
	"strings"
)

const plKey = "PL"

// SampleNames returns the sample columns of a header in file order.
func SampleNames(header vcf.Header) []string {
	ans := make([]string, len(header.Samples))
	for name, idx := range header.Samples {
		if idx >= 0 && idx < len(ans) {
			ans[idx] = name
		}
	}
	return ans
}

// FromVcf converts a gonomics record. samples may be nil or shorter than
// v.Samples, in which case the missing names are left empty.
func FromVcf(v vcf.Vcf, samples []string) Variant {
	var ans Variant
	ans.Chr = v.Chr
	ans.Pos = v.Pos
	ans.Id = v.Id
	ans.Qual = v.Qual
	ans.Filter = v.Filter
	ans.Info = ParseInfo(v.Info)
	ans.Format = slices.Clone(v.Format)

	ans.Alleles = make([]Allele, 1, 1+len(v.Alt))
	ans.Alleles[0] = Allele{Bases: v.Ref, IsRef: true}
	for i := range v.Alt {
		if v.Alt[i] == "." || v.Alt[i] == "" {
			continue
		}
		ans.Alleles = append(ans.Alleles, Allele{Bases: v.Alt[i]})
	}

	plIdx := slices.Index(v.Format, plKey)
	ans.Genotypes = make([]Genotype, len(v.Samples))
	var i, j int
	var g *Genotype
	for i = range v.Samples {
		g = &ans.Genotypes[i]
		if i < len(samples) {
			g.Sample = samples[i]
		}
		g.Phase = slices.Clone(v.Samples[i].Phase)
		g.Data = slices.Clone(v.Samples[i].FormatData)
		// gonomics reads '.' and './.' as nil alleles and cannot write an empty slice
		if v.Samples[i].Alleles != nil {
			g.Alleles = make([]Allele, len(v.Samples[i].Alleles))
		}
		for j = range v.Samples[i].Alleles {
			g.Alleles[j] = alleleAt(ans.Alleles, v.Samples[i].Alleles[j])
		}
		if plIdx >= 0 && plIdx < len(g.Data) {
			g.PL = parsePL(g.Data[plIdx])
		}
	}
	return ans
}

// ToVcf converts back to a gonomics record ready for vcf.WriteVcf.
func ToVcf(v Variant) vcf.Vcf {
	var ans vcf.Vcf
	ans.Chr = v.Chr
	ans.Pos = v.Pos
	ans.Id = v.Id
	ans.Qual = v.Qual
	ans.Filter = v.Filter
	ans.Info = v.Info.String()
	ans.Format = slices.Clone(v.Format)

	if len(v.Alleles) > 0 {
		ans.Ref = v.Alleles[0].Bases
	}
	if len(v.Alleles) > 1 {
		ans.Alt = make([]string, len(v.Alleles)-1)
		for i := range ans.Alt {
			ans.Alt[i] = v.Alleles[i+1].Bases
		}
	} else {
		ans.Alt = []string{"."}
	}

	plIdx := slices.Index(v.Format, plKey)
	ans.Samples = make([]vcf.Sample, len(v.Genotypes))
	var i, j int
	var g Genotype
	for i, g = range v.Genotypes {
		ans.Samples[i].Phase = slices.Clone(g.Phase)
		ans.Samples[i].FormatData = slices.Clone(g.Data)
		if g.Alleles != nil {
			ans.Samples[i].Alleles = make([]int16, len(g.Alleles))
		}
		for j = range g.Alleles {
			ans.Samples[i].Alleles[j] = alleleIndex(v.Alleles, g.Alleles[j])
		}
		if g.HasPL() && plIdx >= 0 && plIdx < len(ans.Samples[i].FormatData) {
			ans.Samples[i].FormatData[plIdx] = formatPL(g.PL)
		}
	}
	return ans
}

// indexAllelePrefix marks an allele that stands in for a genotype index with
// no matching record allele, e.g. the 2 in 0/2 on a biallelic site.
const indexAllelePrefix = "#"

// alleleAt maps a genotype allele index onto the record alleles. Missing
// calls (-1) become NoCall. Indexes past the end of the allele list keep
// their index in a placeholder allele so they are written back unchanged.
func alleleAt(alleles []Allele, idx int16) Allele {
	if idx < 0 {
		return NoCall
	}
	if int(idx) >= len(alleles) {
		return Allele{Bases: indexAllelePrefix + strconv.Itoa(int(idx))}
	}
	return alleles[idx]
}

// alleleIndex is the inverse of alleleAt. NoCall is written as -1, which
// gonomics prints as -1 rather than '.', so a mixed call such as ./1 comes
// out as -1/0 after a swap, the same as gonomics writes it without one.
func alleleIndex(alleles []Allele, a Allele) int16 {
	if idx := slices.Index(alleles, a); idx >= 0 {
		return int16(idx)
	}
	if strings.HasPrefix(a.Bases, indexAllelePrefix) {
		if idx, err := strconv.Atoi(strings.TrimPrefix(a.Bases, indexAllelePrefix)); err == nil && idx >= 0 {
			return int16(idx)
		}
	}
	return -1
}

func parsePL(s string) []int {
	if s == "" || s == "." {
		return nil
	}
	fields := strings.Split(s, ",")
	ans := make([]int, len(fields))
	var err error
	for i := range fields {
		ans[i], err = strconv.Atoi(fields[i])
		if err != nil {
			return nil
		}
	}
	return ans
}

func formatPL(pl []int) string {
	s := new(strings.Builder)
	for i := range pl {
		if i > 0 {
			s.WriteByte(',')
		}
		s.WriteString(strconv.Itoa(pl[i]))
	}
	return s.String()
}
