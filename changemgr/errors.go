package changemgr

import "errors"

// ErrDeleteAbsentRow is returned by Manager.Delete in strict mode when
// the row being deleted is not present (by the manager's own
// integrated count) at commit time of the prior batch.
var ErrDeleteAbsentRow = errors.New("changemgr: delete of row absent from integrated input")
