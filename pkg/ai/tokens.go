package ai

import (
	"github.com/pkoukk/tiktoken-go"
)

// NumTokens counts content tokens for model, falling back to the
// cl100k_base encoding for models tiktoken does not know.
func NumTokens(content, model string) (int, error) {
	tkm, err := tiktoken.EncodingForModel(model)
	if err != nil {
		if tkm, err = tiktoken.GetEncoding("cl100k_base"); err != nil {
			return 0, err
		}
	}
	return len(tkm.Encode(content, nil, nil)), nil
}

// ContentIsOverLimit reports whether content exceeds the analyze input
// budget. Counting failures never block the request.
func ContentIsOverLimit(content, model string) bool {
	n, err := NumTokens(content, model)
	if err != nil {
		return false
	}
	return n > AnalyzeMaxInputTokens
}
