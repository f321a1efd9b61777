// internal/protein/alphabet.go
package protein

// Alphabet is the canonical 20-letter amino-acid alphabet.
const Alphabet = "ACDEFGHIKLMNPQRSTVWY"

var valid [256]bool

func init() {
	for i := 0; i < len(Alphabet); i++ {
		valid[Alphabet[i]] = true
	}
}

// Canonical uppercases r and reports whether it is one of the 20 amino acids.
func Canonical(r byte) (byte, bool) {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	return r, valid[r]
}

// IsResidue reports whether r (any case) is a standard amino acid.
func IsResidue(r byte) bool {
	_, ok := Canonical(r)
	return ok
}

var oneToThree = map[byte]string{
	'A': "Ala", 'C': "Cys", 'D': "Asp", 'E': "Glu", 'F': "Phe",
	'G': "Gly", 'H': "His", 'I': "Ile", 'K': "Lys", 'L': "Leu",
	'M': "Met", 'N': "Asn", 'P': "Pro", 'Q': "Gln", 'R': "Arg",
	'S': "Ser", 'T': "Thr", 'V': "Val", 'W': "Trp", 'Y': "Tyr",
}

// ThreeLetter returns the three-letter code for a residue ("Xaa" if unknown).
func ThreeLetter(r byte) string {
	c, _ := Canonical(r)
	if three, ok := oneToThree[c]; ok {
		return three
	}
	return "Xaa"
}
