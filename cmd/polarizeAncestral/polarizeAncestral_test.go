package main

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vertgenlab/gonomics/vcf"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var testInput = []string{
	"##fileformat=VCFv4.2",
	"##INFO=<ID=AA,Number=1,Type=String,Description=\"Ancestral Allele\">",
	"##INFO=<ID=AC,Number=A,Type=Integer,Description=\"Allele count in genotypes\">",
	"##FORMAT=<ID=GT,Number=1,Type=String,Description=\"Genotype\">",
	"##FORMAT=<ID=DP,Number=1,Type=Integer,Description=\"Read Depth\">",
	"##FORMAT=<ID=PL,Number=G,Type=Integer,Description=\"Phred-scaled genotype likelihoods\">",
	"#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\tFORMAT\ts1\ts2\ts3",
	"chr1\t100\trs1\tA\tT\t50\tPASS\tAC=1;AA=T\tGT:DP:PL\t0/1:12:0,10,30\t0/0:20:0,20,200\t./.:.:.",
	"chr1\t200\trs2\tC\tG\t50\tPASS\tAC=1;AA=C\tGT:DP:PL\t0/1:12:0,10,30\t0/0:20:0,20,200\t./.:.:.",
	"chr1\t300\trs3\tC\tG,T\t50\tPASS\tAA=G\tGT:DP:PL\t0/1:12:0,10,30,5,6,7\t0/2:20:0,20,200,1,2,3\t./.:.:.",
	"chr1\t400\trs4\tG\tC\t50\tPASS\tDP=5\tGT:DP:PL\t1/1:5:90,10,0\t0/1:6:20,0,20\t./.:.:.",
}

func TestPolarizeAncestral(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.vcf")
	output := filepath.Join(dir, "output.vcf")
	err := os.WriteFile(input, []byte(strings.Join(testInput, "\n")+"\n"), 0644)
	require.NoError(t, err)

	s := polarizeAncestral(input, output)
	assert.Equal(t, stats{total: 4, swapped: 1, notBiallelic: 1, noAncestral: 1, alreadyPolar: 1}, s)

	records, header := vcf.Read(output)
	require.Len(t, records, 4)
	assert.Len(t, header.Samples, 3)

	swapped := records[0]
	assert.Equal(t, "T", swapped.Ref)
	assert.Equal(t, []string{"A"}, swapped.Alt)
	assert.Equal(t, "AC=3;AA=T", swapped.Info)
	assert.Equal(t, []int16{1, 0}, swapped.Samples[0].Alleles)
	assert.Equal(t, []int16{1, 1}, swapped.Samples[1].Alleles)
	assert.Equal(t, "30,10,0", swapped.Samples[0].FormatData[2])
	assert.Equal(t, "200,20,0", swapped.Samples[1].FormatData[2])
	require.Len(t, swapped.Samples, 3)
	assert.Nil(t, swapped.Samples[2].Alleles)

	for i := 1; i < 4; i++ {
		assert.Equal(t, strings.Split(testInput[i+7], "\t")[3], records[i].Ref)
		assert.Equal(t, strings.Split(testInput[i+7], "\t")[7], records[i].Info)
	}
	assert.Equal(t, []string{"G", "T"}, records[2].Alt)
}

func TestStatsString(t *testing.T) {
	s := stats{total: 4, swapped: 1, notBiallelic: 1, noAncestral: 1, alreadyPolar: 1}
	assert.Equal(t, "processed 4 records: 1 swapped, 1 not biallelic, 1 missing AA, 1 already polarized", s.String())
}
