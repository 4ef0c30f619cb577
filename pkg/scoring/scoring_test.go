package scoring

import (
	"testing"
)

func TestDNA(t *testing.T) {
	nuc := DNA()
	for i := range nuc {
		for j := range nuc[i] {
			var want int32
			switch {
			case i == 0 || j == 0:
				want = -1
			case i == j:
				want = 3
			default:
				want = 1
			}
			if nuc[i][j] != want {
				t.Errorf("problem in TestDNA at [%d][%d]: %d", i, j, nuc[i][j])
			}
		}
	}
}

func TestBLOSUM62(t *testing.T) {
	prot := BLOSUM62()
	for i := range prot {
		if prot[0][i] != -20 || prot[i][0] != -20 {
			t.Errorf("problem in TestBLOSUM62: unknown row/column at %d", i)
		}
	}

	// self scores in class order CSTPAGNDEQHRKMILVFYW
	self := []int32{9, 4, 4, 7, 4, 6, 6, 6, 5, 5, 8, 5, 5, 5, 4, 4, 4, 6, 7, 11}
	for i, want := range self {
		if prot[i+1][i+1] != want {
			t.Errorf("problem in TestBLOSUM62: self score of class %d is %d", i+1, prot[i+1][i+1])
		}
	}
}

func TestSchemeScore(t *testing.T) {
	if Nucleotide.Score('A', 'a') != 3 {
		t.Errorf("problem in TestSchemeScore: A/a")
	}
	if Nucleotide.Score('T', 'U') != 3 {
		t.Errorf("problem in TestSchemeScore: T/U")
	}
	if Nucleotide.Score('A', 'G') != 1 {
		t.Errorf("problem in TestSchemeScore: A/G")
	}
	if Nucleotide.Score('A', 'Z') != -1 {
		t.Errorf("problem in TestSchemeScore: A/Z")
	}
	if Protein.Score('W', 'w') != 11 {
		t.Errorf("problem in TestSchemeScore: W/w")
	}
	if Protein.Score('C', 'S') != -1 {
		t.Errorf("problem in TestSchemeScore: C/S")
	}
	if Protein.Score('B', 'C') != -20 {
		t.Errorf("problem in TestSchemeScore: B/C")
	}
}

func TestTablesAreCopies(t *testing.T) {
	d := DNA()
	d[3][3] = 100
	b := BLOSUM62()
	b[20][20] = 100

	if Nucleotide.Score('A', 'A') != 3 || DNA()[3][3] == d[3][3] {
		t.Errorf("problem in TestTablesAreCopies: nucleotide scores changed")
	}
	if Protein.Score('W', 'W') != 11 || BLOSUM62()[20][20] == b[20][20] {
		t.Errorf("problem in TestTablesAreCopies: protein scores changed")
	}
}

func TestSchemeLookup(t *testing.T) {
	nuc := DNA()
	for a := 0; a < Nucleotide.Size(); a++ {
		for b := 0; b < Nucleotide.Size(); b++ {
			if Nucleotide.Lookup(uint8(a), uint8(b)) != nuc[a][b] {
				t.Errorf("problem in TestSchemeLookup: nucleotide [%d][%d]", a, b)
			}
		}
	}

	prot := BLOSUM62()
	for a := 0; a < Protein.Size(); a++ {
		for b := 0; b < Protein.Size(); b++ {
			if Protein.Lookup(uint8(a), uint8(b)) != prot[a][b] {
				t.Errorf("problem in TestSchemeLookup: protein [%d][%d]", a, b)
			}
		}
	}
}

func TestSchemeByName(t *testing.T) {
	s, err := SchemeByName("protein")
	if err != nil {
		t.Error(err)
	}
	if s.Name != "protein" || s.Size() != 21 {
		t.Errorf("problem in TestSchemeByName: protein")
	}

	s, err = SchemeByName("nucleotide")
	if err != nil {
		t.Error(err)
	}
	if s.Name != "nucleotide" || s.Size() != 5 {
		t.Errorf("problem in TestSchemeByName: nucleotide")
	}

	_, err = SchemeByName("rna")
	if err == nil || err.Error() != "unknown scoring scheme: rna" {
		t.Errorf("problem in TestSchemeByName: %v", err)
	}
}
