package sparse

// MergeIntersectWithHook exposes the step hook of the merge to tests.
var MergeIntersectWithHook = mergeIntersect
