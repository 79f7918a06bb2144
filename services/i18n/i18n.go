package i18n

import (
	"embed"
	"fmt"
	"strings"

	"github.com/patrickmn/go-cache"
	"gopkg.in/yaml.v3"
)

const DefaultLanguage = "en"

// Catalog namespaces.
const (
	NamespaceEmail = "email"
	NamespaceSMS   = "sms"
)

var supportedLanguages = map[string]struct{}{
	"en":    {},
	"es":    {},
	"pt-PT": {},
}

//go:embed translations
var translations embed.FS

func IsSupported(lang string) bool {
	_, ok := supportedLanguages[lang]
	return ok
}

// NormalizeLanguage maps a requested language tag to a supported one: an exact
// match wins, then the base language before the first "-", then English.
func NormalizeLanguage(lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return DefaultLanguage
	}
	if IsSupported(lang) {
		return lang
	}
	base := strings.SplitN(lang, "-", 2)[0]
	if IsSupported(base) {
		return base
	}
	return DefaultLanguage
}

// Translator resolves dotted keys against the embedded YAML catalogs.
// Parsed catalogs are kept in memory for the life of the process.
type Translator struct {
	catalogs *cache.Cache
}

func NewTranslator() *Translator {
	return &Translator{
		catalogs: cache.New(cache.NoExpiration, 0),
	}
}

// T returns the translation for key in lang, falling back to English and
// finally to the key itself. {{param}} placeholders are replaced from params.
func (t *Translator) T(lang, namespace, key string, params map[string]string) string {
	value, ok := t.Lookup(lang, namespace, key, params)
	if !ok {
		return key
	}
	return value
}

// Lookup is T without the key fallback.
func (t *Translator) Lookup(lang, namespace, key string, params map[string]string) (string, bool) {
	lang = NormalizeLanguage(lang)

	value, ok := t.raw(lang, namespace, key)
	if !ok && lang != DefaultLanguage {
		value, ok = t.raw(DefaultLanguage, namespace, key)
	}
	if !ok {
		return "", false
	}
	return interpolate(value, params), true
}

func (t *Translator) raw(lang, namespace, key string) (string, bool) {
	catalog, err := t.catalog(lang, namespace)
	if err != nil {
		return "", false
	}
	value, ok := catalog[key]
	return value, ok
}

func (t *Translator) catalog(lang, namespace string) (map[string]string, error) {
	cacheKey := namespace + ":" + lang
	if cached, found := t.catalogs.Get(cacheKey); found {
		return cached.(map[string]string), nil
	}

	data, err := translations.ReadFile(fmt.Sprintf("translations/%s/%s.yaml", lang, namespace))
	if err != nil {
		return nil, err
	}

	var tree map[string]interface{}
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("parse %s/%s catalog: %w", lang, namespace, err)
	}

	flat := make(map[string]string)
	flatten("", tree, flat)
	t.catalogs.Set(cacheKey, flat, cache.NoExpiration)
	return flat, nil
}

func flatten(prefix string, node map[string]interface{}, out map[string]string) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]interface{}:
			flatten(key, val, out)
		case nil:
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}

func interpolate(s string, params map[string]string) string {
	if len(params) == 0 || !strings.Contains(s, "{{") {
		return s
	}
	pairs := make([]string, 0, len(params)*4)
	for k, v := range params {
		pairs = append(pairs, "{{"+k+"}}", v, "{{ "+k+" }}", v)
	}
	return strings.NewReplacer(pairs...).Replace(s)
}
