package update

import (
	"bytes"
	"testing"

	"github.com/hashicorp/go-version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tcnksm/go-latest"
)

type fixedTags []string

func (f fixedTags) Validate() error { return nil }

func (f fixedTags) Fetch() (*latest.FetchResponse, error) {
	fr := &latest.FetchResponse{}
	for _, s := range f {
		v, err := version.NewVersion(s)
		if err != nil {
			fr.Malformeds = append(fr.Malformeds, s)
			continue
		}
		fr.Versions = append(fr.Versions, v)
	}
	return fr, nil
}

func TestCheck(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Check(fixedTags{"0.1.0", "0.3.0"}, "0.2.0", &out))
	assert.Contains(t, out.String(), "new version is available: 0.3.0")

	out.Reset()
	require.NoError(t, Check(fixedTags{"0.1.0", "0.3.0"}, "0.3.0", &out))
	assert.Contains(t, out.String(), "latest version: 0.3.0")
}

func TestCheckDev(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Check(fixedTags{"9.9.9"}, "dev", &out))
	assert.Contains(t, out.String(), "development build")
}
