package settings

// Merge folds source into target and returns target.
//
// For every defined key of source:
//   - with recurse set and both sides of the same composite kind, sequences are
//     concatenated (target items first) and mappings are merged recursively;
//   - otherwise the source value replaces the target value.
//
// Undefined source values are skipped. Composite values copied from source are
// deep-copied, so later merges into target never write through to source.
// A nil target is allocated.
func Merge(target, source Map, recurse bool) Map {
	if target == nil {
		target = make(Map, len(source))
	}
	for key, src := range source {
		if !src.IsDefined() {
			continue
		}
		dst, ok := target[key]
		if recurse && ok && dst.kind == src.kind {
			switch src.kind {
			case KindMapping:
				target[key] = Mapping(Merge(dst.mapping, src.mapping, true))
				continue
			case KindSequence:
				items := make([]Value, 0, len(dst.sequence)+len(src.sequence))
				items = append(items, dst.sequence...)
				for _, item := range src.sequence {
					items = append(items, item.clone())
				}
				target[key] = Sequence(items...)
				continue
			}
		}
		// Mismatched kinds fall back to overwrite, never to a partial merge.
		target[key] = src.clone()
	}
	return target
}
