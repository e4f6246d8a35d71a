package clock

import "time"

// NowFunc supplies the wall clock used for touch timestamps and approval
// decisions. Tests replace it to get stable values.
var NowFunc = time.Now

// Now returns NowFunc() truncated to microseconds, the finest resolution every
// supported local file system keeps for modification times.
func Now() time.Time { return NowFunc().Truncate(time.Microsecond) }
