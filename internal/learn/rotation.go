package learn

// EffectiveTypes intersects the user-enabled types with the types available
// in this build, ordered by the canonical priority (multiple choice, multi
// select, written). An empty result means the caller must surface
// ErrNoEffectiveTypes and block entry into the session.
func EffectiveTypes(enabled, available []QuestionType) []QuestionType {
	enabledSet := make(map[QuestionType]bool, len(enabled))
	for _, t := range enabled {
		enabledSet[t] = true
	}
	availableSet := make(map[QuestionType]bool, len(available))
	for _, t := range available {
		availableSet[t] = true
	}

	var effective []QuestionType
	for _, t := range typePriority {
		if enabledSet[t] && availableSet[t] {
			effective = append(effective, t)
		}
	}
	return effective
}

// GenerateRotation assigns a question type to each pool position by simple
// round-robin over the effective types. The rotation is computed once per
// pool and stored in the session state; it is regenerated only when the
// pool identity or the effective type set changes.
func GenerateRotation(effective []QuestionType, poolLen int) []QuestionType {
	if len(effective) == 0 || poolLen <= 0 {
		return nil
	}
	rotation := make([]QuestionType, poolLen)
	for i := range rotation {
		rotation[i] = effective[i%len(effective)]
	}
	return rotation
}

// RegenerateRemaining returns a rotation with positions before keepBefore
// preserved and every later position reassigned from the new effective
// types. Already-visited positions keep their recorded types when settings
// change mid-session.
func RegenerateRemaining(rotation []QuestionType, effective []QuestionType, keepBefore, poolLen int) []QuestionType {
	if len(effective) == 0 || poolLen <= 0 {
		return nil
	}
	if keepBefore > poolLen {
		keepBefore = poolLen
	}
	if keepBefore > len(rotation) {
		keepBefore = len(rotation)
	}

	next := make([]QuestionType, poolLen)
	copy(next, rotation[:keepBefore])
	for i := keepBefore; i < poolLen; i++ {
		next[i] = effective[i%len(effective)]
	}
	return next
}

// rotationWithin reports whether every type in the rotation slice is a
// member of effective. A false result means settings changed since the
// rotation was generated and the unvisited tail must be reassigned.
func rotationWithin(rotation []QuestionType, effective []QuestionType) bool {
	allowed := make(map[QuestionType]bool, len(effective))
	for _, t := range effective {
		allowed[t] = true
	}
	for _, t := range rotation {
		if !allowed[t] {
			return false
		}
	}
	return true
}

// TypeAt returns the question type for pool position i. Positions beyond
// the rotation length fall back to round-robin over the effective types.
func TypeAt(rotation []QuestionType, effective []QuestionType, i int) QuestionType {
	if i >= 0 && i < len(rotation) {
		return rotation[i]
	}
	if len(effective) > 0 {
		return effective[i%len(effective)]
	}
	return TypeMultipleChoice
}
