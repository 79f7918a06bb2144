package i18n

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeLanguage(t *testing.T) {
	cases := map[string]string{
		"":      "en",
		"en":    "en",
		"es":    "es",
		"pt-PT": "pt-PT",
		"es-MX": "es",
		"en-GB": "en",
		"pt-BR": "en",
		"pt":    "en",
		"xx":    "en",
	}
	for in, want := range cases {
		require.Equal(t, want, NormalizeLanguage(in), "input %q", in)
	}
}

func TestTranslateWithInterpolation(t *testing.T) {
	tr := NewTranslator()

	got := tr.T("es-MX", NamespaceSMS, "otp.login", map[string]string{
		"appName": "Portalfi",
		"code":    "123456",
		"minutes": "10",
	})
	require.Contains(t, got, "123456")
	require.Contains(t, got, "10 minutos")
	require.NotContains(t, got, "{{")
}

func TestTranslateFallsBackToKey(t *testing.T) {
	tr := NewTranslator()

	require.Equal(t, "otp.missing", tr.T("en", NamespaceSMS, "otp.missing", nil))
	_, ok := tr.Lookup("pt-PT", NamespaceEmail, "welcome.nothing", nil)
	require.False(t, ok)
}

func TestEveryLanguageHasTheEnglishKeys(t *testing.T) {
	tr := NewTranslator()

	for _, ns := range []string{NamespaceEmail, NamespaceSMS} {
		en, err := tr.catalog("en", ns)
		require.NoError(t, err)

		for _, lang := range []string{"es", "pt-PT"} {
			other, err := tr.catalog(lang, ns)
			require.NoError(t, err)
			for key := range en {
				_, ok := other[key]
				require.True(t, ok, "%s/%s is missing %s", lang, ns, key)
			}
		}
	}
}
