package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/vcfPolarity/polarity"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"github.com/vertgenlab/gonomics/vcf"
	"log"
)

func usage() {
	fmt.Print(
		"polarizeAncestral - Swap REF and ALT for biallelic sites where the ancestral allele (INFO/AA) is the ALT allele.\n" +
			"Genotypes are recoded, PL is reversed, and INFO/AC is recomputed for swapped sites.\n" +
			"Usage:\n" +
			"./polarizeAncestral [options] -i input.vcf\n\n")
	flag.PrintDefaults()
}

func main() {
	input := flag.String("i", "", "Input VCF file. May be gzipped.")
	output := flag.String("o", "stdout", "Output VCF file")
	quiet := flag.Bool("q", false, "Do not log a summary when finished.")
	flag.Parse()

	if *input == "" {
		usage()
		log.Fatal("ERROR: must specify an input VCF (-i)")
	}

	s := polarizeAncestral(*input, *output)
	if !*quiet {
		log.Println(s)
	}
}

type stats struct {
	total        int
	swapped      int
	notBiallelic int
	noAncestral  int
	alreadyPolar int
}

func (s stats) String() string {
	return fmt.Sprintf("processed %d records: %d swapped, %d not biallelic, %d missing AA, %d already polarized",
		s.total, s.swapped, s.notBiallelic, s.noAncestral, s.alreadyPolar)
}

func (s *stats) count(v polarity.Variant) {
	s.total++
	switch {
	case v.NAlleles() != 2:
		s.notBiallelic++
	case !v.Info.Has(polarity.AncestralAlleleKey):
		s.noAncestral++
	case polarity.NeedsSwap(v):
		s.swapped++
	default:
		s.alreadyPolar++
	}
}

func polarizeAncestral(input, output string) stats {
	out := fileio.EasyCreate(output)
	data, header := vcf.GoReadToChan(input)
	vcf.NewWriteHeader(out, header)
	samples := polarity.SampleNames(header)

	var s stats
	var rec polarity.Variant
	for v := range data {
		rec = polarity.FromVcf(v, samples)
		s.count(rec)
		if !polarity.NeedsSwap(rec) {
			vcf.WriteVcf(out, v)
			continue
		}
		vcf.WriteVcf(out, polarity.ToVcf(polarity.Normalize(rec)))
	}
	err := out.Close()
	exception.PanicOnErr(err)
	return s
}
