package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "value" or "field").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			return "型が不正です"
		case "required":
			return "必須プロパティが不足しています"
		case "unsupported_type":
			return "サポートされない型です"
		case "coercion":
			return "値を変換できません"
		case "malformed_row":
			return "行が不正です"
		case "parse_error":
			return "解析エラー"
		case "violation":
			return "制約に違反しています"
		case "column_mismatch":
			return "列数がスキーマと一致しません"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return "invalid type"
		case "required":
			return "required property missing"
		case "unsupported_type":
			return "unsupported field type"
		case "coercion":
			if v, ok := data["value"]; ok {
				return "cannot coerce value " + v
			}
			return "cannot coerce value"
		case "malformed_row":
			return "malformed row"
		case "parse_error":
			return "parse error"
		case "violation":
			return "constraint violated"
		case "column_mismatch":
			return "column count does not match schema"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
