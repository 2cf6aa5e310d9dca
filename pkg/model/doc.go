// pkg/model/doc.go

/*
Package model is a static lookup of the widths of C integer types under the
historical data models.

The C standard defines five base integer types (char, short, int, long and
long long) without fixing their widths. A platform or vendor data model does.
Four models found wide acceptance:

    LP32   2/4/4  m68k Mac, Win16 API
    ILP32  4/4/4  Win32 API, Unix before the mid-1990s
    LLP64  4/4/8  Win64 API
    LP64   4/8/8  Unix and Unix-like systems (Linux, macOS)

The triple is the int/long/pointer width in bytes. ILP64 and SILP64 are
included for completeness.

Basic Usage:

    import "github.com/arc-language/datamodels/pkg/model"

    p := model.LP64.SizeOf(model.Pointer) // 8
    bits := model.BitsOf(model.LLP64, model.Long) // 32

    m, err := model.Guess(4, 4, 8) // LLP64

References:

J. R. Mashey. The long road to 64 bits. ACM Queue, 4(8):24-35, 2006.
T. Lauer. Porting to Win32. Springer, 1996.
*/
package model
