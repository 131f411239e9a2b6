package normalize

import "strings"

// SplitName is a full person name decomposed for official forms that
// ask for surnames and given names separately.
type SplitName struct {
	PrimerApellido  string
	SegundoApellido string
	Nombres         string
}

// SplitFullName decomposes a full name by whitespace tokenization:
// 1 token -> (token, "", ""); 2 tokens -> (token1, "", token2);
// 3+ tokens -> (token1, token2, rest joined). Heuristic only: compound
// surnames ("De la Cruz") are ambiguous and will split incorrectly.
func SplitFullName(full string) SplitName {
	tokens := strings.Fields(full)
	switch len(tokens) {
	case 0:
		return SplitName{}
	case 1:
		return SplitName{PrimerApellido: tokens[0]}
	case 2:
		return SplitName{PrimerApellido: tokens[0], Nombres: tokens[1]}
	default:
		return SplitName{
			PrimerApellido:  tokens[0],
			SegundoApellido: tokens[1],
			Nombres:         strings.Join(tokens[2:], " "),
		}
	}
}
