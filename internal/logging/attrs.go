package logging

import "log/slog"

// flattenAttr writes attr into values. Group members are flattened into
// dotted keys so every event field is a single key=value pair.
func flattenAttr(prefix string, attr slog.Attr, values map[string]any) {
	if attr.Key == "" && attr.Value.Kind() != slog.KindGroup {
		return
	}
	key := attr.Key
	if prefix != "" && key != "" {
		key = prefix + "." + key
	} else if key == "" {
		key = prefix
	}
	value := attr.Value.Resolve()
	if value.Kind() != slog.KindGroup {
		values[key] = value.Any()
		return
	}
	for _, member := range value.Group() {
		flattenAttr(key, member, values)
	}
}

func attrsToMap(attrs []slog.Attr) map[string]any {
	if len(attrs) == 0 {
		return nil
	}
	values := map[string]any{}
	for _, attr := range attrs {
		flattenAttr("", attr, values)
	}
	if len(values) == 0 {
		return nil
	}
	return values
}
