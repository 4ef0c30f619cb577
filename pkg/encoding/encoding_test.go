package encoding

import (
	"reflect"
	"testing"
)

func TestNucleotideCode(t *testing.T) {
	lookup := map[byte]uint8{
		'T': 1, 't': 1, 'U': 1, 'u': 1,
		'C': 2, 'c': 2,
		'A': 3, 'a': 3,
		'G': 4, 'g': 4,
	}

	for i := 0; i < 256; i++ {
		c := byte(i)
		want := lookup[c]
		if got := NucleotideCode(c); got != want {
			t.Errorf("problem in TestNucleotideCode: %q gave %d, wanted %d", c, got, want)
		}
	}
}

func TestAminoAcidCode(t *testing.T) {
	aas := "CSTPAGNDEQHRKMILVFYW"
	lower := "cstpagndeqhrkmilvfyw"

	for i := 0; i < len(aas); i++ {
		if AminoAcidCode(aas[i]) != uint8(i+1) || AminoAcidCode(lower[i]) != uint8(i+1) {
			t.Errorf("problem in TestAminoAcidCode: %c", aas[i])
		}
	}

	for _, c := range []byte("BJOUXZ*-_ 0\x00\xff") {
		if AminoAcidCode(c) != Unknown {
			t.Errorf("problem in TestAminoAcidCode: %q should be unknown", c)
		}
	}
}

func TestCodesInRange(t *testing.T) {
	for i := 0; i < 256; i++ {
		if NucleotideCode(byte(i)) > NucleotideMax {
			t.Errorf("nucleotide code out of range for %d", i)
		}
		if AminoAcidCode(byte(i)) > AminoAcidMax {
			t.Errorf("amino acid code out of range for %d", i)
		}
	}
}

func TestEncoderEncode(t *testing.T) {
	got := Encoder(NucleotideCode).Encode([]byte("ACGTUNacgtu-"))
	want := []uint8{3, 2, 4, 1, 1, 0, 3, 2, 4, 1, 1, 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("problem in TestEncoderEncode: %v", got)
	}

	got = Encoder(AminoAcidCode).Encode([]byte{})
	if len(got) != 0 {
		t.Errorf("problem in TestEncoderEncode: empty input")
	}
}
