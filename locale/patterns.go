package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// PatternLookup gives the default pattern of a locale.
type PatternLookup interface {
	Lookup(string) (string, bool)
}

// Patterns maps locale identifiers, in the underscore form (en_US,
// sr_BA_#Latn), to a default date time pattern.
type Patterns map[string]string

// Lookup returns the pattern registered for tag. When tag has no entry, the
// language_REGION form, then the language alone and finally the root entry
// are tried. Tag can be given in BCP 47 form (en-US).
func (p Patterns) Lookup(tag string) (string, bool) {
	for _, key := range Candidates(tag) {
		if str, ok := p[key]; ok {
			return str, true
		}
	}
	return "", false
}

// Candidates returns the keys to try, in order, when searching tag in a
// table keyed by locale identifiers. The last candidate is always the root.
func Candidates(tag string) []string {
	var list []string
	add := func(key string) {
		for _, k := range list {
			if k == key {
				return
			}
		}
		list = append(list, key)
	}
	if tag != "" {
		add(tag)
	}
	if key := canonical(tag); key != "" {
		for key != "" {
			add(key)
			ix := strings.LastIndexByte(key, '_')
			if ix < 0 {
				break
			}
			key = key[:ix]
		}
	}
	key := strings.ReplaceAll(tag, "-", "_")
	for key != "" {
		add(key)
		ix := strings.LastIndexByte(key, '_')
		if ix < 0 {
			break
		}
		key = key[:ix]
	}
	add(Root)
	return list
}

var legacyCodes = map[string]string{
	"he": "iw",
	"id": "in",
	"yi": "ji",
}

func canonical(tag string) string {
	tag = strings.ReplaceAll(tag, "_", "-")
	if ix := strings.Index(tag, "-#"); ix >= 0 {
		tag = tag[:ix]
	}
	t, err := language.Parse(tag)
	if err != nil {
		return ""
	}
	base, conf := t.Base()
	if conf == language.No {
		return ""
	}
	str := base.String()
	if legacy, ok := legacyCodes[str]; ok {
		str = legacy
	}
	if region, conf := t.Region(); conf == language.Exact {
		str += "_" + region.String()
	}
	return str
}

// DefaultPatterns is the table of default short date time patterns of the
// Java runtime.
var DefaultPatterns = Patterns{
	"":                        "M/d/yy h:mm a",
	"ar":                      "dd/MM/yy hh:mm a",
	"ar_AE":                   "dd/MM/yy hh:mm a",
	"ar_BH":                   "dd/MM/yy hh:mm a",
	"ar_DZ":                   "dd/MM/yy hh:mm a",
	"ar_EG":                   "dd/MM/yy hh:mm a",
	"ar_IQ":                   "dd/MM/yy hh:mm a",
	"ar_JO":                   "dd/MM/yy hh:mm a",
	"ar_KW":                   "dd/MM/yy hh:mm a",
	"ar_LB":                   "dd/MM/yy hh:mm a",
	"ar_LY":                   "dd/MM/yy hh:mm a",
	"ar_MA":                   "dd/MM/yy hh:mm a",
	"ar_OM":                   "dd/MM/yy hh:mm a",
	"ar_QA":                   "dd/MM/yy hh:mm a",
	"ar_SA":                   "dd/MM/yy hh:mm a",
	"ar_SD":                   "dd/MM/yy hh:mm a",
	"ar_SY":                   "dd/MM/yy hh:mm a",
	"ar_TN":                   "dd/MM/yy hh:mm a",
	"ar_YE":                   "dd/MM/yy hh:mm a",
	"be":                      "d.M.yy H.mm",
	"be_BY":                   "d.M.yy H.mm",
	"bg":                      "dd.MM.yy HH:mm",
	"bg_BG":                   "dd.MM.yy HH:mm",
	"ca":                      "dd/MM/yy HH:mm",
	"ca_ES":                   "dd/MM/yy HH:mm",
	"cs":                      "d.M.yy H:mm",
	"cs_CZ":                   "d.M.yy H:mm",
	"da":                      "dd-MM-yy HH:mm",
	"da_DK":                   "dd-MM-yy HH:mm",
	"de":                      "dd.MM.yy HH:mm",
	"de_AT":                   "dd.MM.yy HH:mm",
	"de_CH":                   "dd.MM.yy HH:mm",
	"de_DE":                   "dd.MM.yy HH:mm",
	"de_GR":                   "dd.MM.yy HH:mm",
	"de_LU":                   "dd.MM.yy HH:mm",
	"el":                      "d/M/yyyy h:mm a",
	"el_CY":                   "dd/MM/yyyy h:mm a",
	"el_GR":                   "d/M/yyyy h:mm a",
	"en":                      "M/d/yy h:mm a",
	"en_AU":                   "d/MM/yy h:mm a",
	"en_CA":                   "dd/MM/yy h:mm a",
	"en_GB":                   "dd/MM/yy HH:mm",
	"en_IE":                   "dd/MM/yy HH:mm",
	"en_IN":                   "d/M/yy h:mm a",
	"en_MT":                   "dd/MM/yyyy HH:mm",
	"en_NZ":                   "d/MM/yy h:mm a",
	"en_PH":                   "M/d/yy h:mm a",
	"en_SG":                   "d/M/yy h:mm a",
	"en_US":                   "M/d/yy h:mm a",
	"en_ZA":                   "yyyy/MM/dd h:mm a",
	"es":                      "d/MM/yy H:mm",
	"es_AR":                   "dd/MM/yy HH:mm",
	"es_BO":                   "dd-MM-yy hh:mm a",
	"es_CL":                   "dd-MM-yy H:mm",
	"es_CO":                   "d/MM/yy hh:mm a",
	"es_CR":                   "dd/MM/yy hh:mm a",
	"es_CU":                   "d/MM/yy H:mm",
	"es_DO":                   "dd/MM/yy hh:mm a",
	"es_EC":                   "dd/MM/yy H:mm",
	"es_ES":                   "d/MM/yy H:mm",
	"es_GT":                   "d/MM/yy hh:mm a",
	"es_HN":                   "MM-dd-yy hh:mm a",
	"es_MX":                   "d/MM/yy hh:mm a",
	"es_NI":                   "MM-dd-yy hh:mm a",
	"es_PA":                   "MM/dd/yy hh:mm a",
	"es_PE":                   "dd/MM/yy hh:mm a",
	"es_PR":                   "MM-dd-yy hh:mm a",
	"es_PY":                   "dd/MM/yy hh:mm a",
	"es_SV":                   "MM-dd-yy hh:mm a",
	"es_US":                   "M/d/yy h:mm a",
	"es_UY":                   "dd/MM/yy hh:mm a",
	"es_VE":                   "dd/MM/yy hh:mm a",
	"et":                      "d.MM.yy H:mm",
	"et_EE":                   "d.MM.yy H:mm",
	"fi":                      "d.M.yyyy H:mm",
	"fi_FI":                   "d.M.yyyy H:mm",
	"fr":                      "dd/MM/yy HH:mm",
	"fr_BE":                   "d/MM/yy H:mm",
	"fr_CA":                   "yy-MM-dd HH:mm",
	"fr_CH":                   "dd.MM.yy HH:mm",
	"fr_FR":                   "dd/MM/yy HH:mm",
	"fr_LU":                   "dd/MM/yy HH:mm",
	"ga":                      "yy/MM/dd HH:mm",
	"ga_IE":                   "dd/MM/yyyy HH:mm",
	"hi":                      "M/d/yy h:mm a",
	"hi_IN":                   "d/M/yy h:mm a",
	"hr":                      "yyyy.MM.dd HH:mm",
	"hr_HR":                   "dd.MM.yy. HH:mm",
	"hu":                      "yyyy.MM.dd. H:mm",
	"hu_HU":                   "yyyy.MM.dd. H:mm",
	"in":                      "yy/MM/dd HH:mm",
	"in_ID":                   "dd/MM/yy H:mm",
	"is":                      "d.M.yyyy HH:mm",
	"is_IS":                   "d.M.yyyy HH:mm",
	"it":                      "dd/MM/yy H.mm",
	"it_CH":                   "dd.MM.yy HH:mm",
	"it_IT":                   "dd/MM/yy H.mm",
	"iw":                      "HH:mm dd/MM/yy",
	"iw_IL":                   "HH:mm dd/MM/yy",
	"ja":                      "yy/MM/dd H:mm",
	"ja_JP":                   "yy/MM/dd H:mm",
	"ja_JP_JP_#u-ca-japanese": "Gy.MM.dd H:mm",
	"ko":                      "yy. M. d a h:mm",
	"ko_KR":                   "yy. M. d a h:mm",
	"lt":                      "yy.M.d HH.mm",
	"lt_LT":                   "yy.M.d HH.mm",
	"lv":                      "yy.d.M HH:mm",
	"lv_LV":                   "yy.d.M HH:mm",
	"mk":                      "d.M.yy HH:mm",
	"mk_MK":                   "d.M.yy HH:mm",
	"ms":                      "yy/MM/dd HH:mm",
	"ms_MY":                   "dd/MM/yyyy h:mm",
	"mt":                      "dd/MM/yyyy HH:mm",
	"mt_MT":                   "dd/MM/yyyy HH:mm",
	"nl":                      "d-M-yy H:mm",
	"nl_BE":                   "d/MM/yy H:mm",
	"nl_NL":                   "d-M-yy H:mm",
	"no":                      "dd.MM.yy HH:mm",
	"no_NO":                   "dd.MM.yy HH:mm",
	"no_NO_NY":                "dd.MM.yy HH:mm",
	"pl":                      "yy-MM-dd HH:mm",
	"pl_PL":                   "dd.MM.yy HH:mm",
	"pt":                      "dd-MM-yyyy H:mm",
	"pt_BR":                   "dd/MM/yy HH:mm",
	"pt_PT":                   "dd-MM-yyyy H:mm",
	"ro":                      "dd.MM.yyyy HH:mm",
	"ro_RO":                   "dd.MM.yyyy HH:mm",
	"ru":                      "dd.MM.yy H:mm",
	"ru_RU":                   "dd.MM.yy H:mm",
	"sk":                      "d.M.yyyy H:mm",
	"sk_SK":                   "d.M.yyyy H:mm",
	"sl":                      "d.M.y H:mm",
	"sl_SI":                   "d.M.y H:mm",
	"sq":                      "yy-MM-dd h.mm.a",
	"sq_AL":                   "yy-MM-dd h.mm.a",
	"sr":                      "d.M.yy. HH.mm",
	"sr_BA":                   "yy-MM-dd HH:mm",
	"sr_BA_#Latn":             "d.M.yy. HH.mm",
	"sr_CS":                   "d.M.yy. HH.mm",
	"sr_ME":                   "d.M.yy. HH.mm",
	"sr_ME_#Latn":             "d.M.yy. HH.mm",
	"sr_RS":                   "d.M.yy. HH.mm",
	"sr_RS_#Latn":             "d.M.yy. HH.mm",
	"sr__#Latn":               "d.M.yy. HH.mm",
	"sv":                      "yyyy-MM-dd HH:mm",
	"sv_SE":                   "yyyy-MM-dd HH:mm",
	"th":                      "d/M/yyyy, H:mm' น.'",
	"th_TH":                   "d/M/yyyy, H:mm' น.'",
	"th_TH_TH_#u-nu-thai":     "d/M/yyyy, H:mm' น.'",
	"tr":                      "dd.MM.yyyy HH:mm",
	"tr_TR":                   "dd.MM.yyyy HH:mm",
	"uk":                      "dd.MM.yy H:mm",
	"uk_UA":                   "dd.MM.yy H:mm",
	"vi":                      "HH:mm dd/MM/yyyy",
	"vi_VN":                   "HH:mm dd/MM/yyyy",
	"zh":                      "yy-M-d ah:mm",
	"zh_CN":                   "yy-M-d ah:mm",
	"zh_HK":                   "yy'年'M'月'd'日' ah:mm",
	"zh_SG":                   "dd/MM/yy a hh:mm",
	"zh_TW":                   "yyyy/M/d a h:mm",
}
