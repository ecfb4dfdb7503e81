package input

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// _IOC编码规则，见<asm-generic/ioctl.h>
const (
	iocNrBits   = 8
	iocTypeBits = 8
	iocSizeBits = 14

	iocNrShift   = 0
	iocTypeShift = iocNrShift + iocNrBits
	iocSizeShift = iocTypeShift + iocTypeBits
	iocDirShift  = iocSizeShift + iocSizeBits

	iocRead = 2
)

func ioc(dir, typ, nr, size uintptr) uintptr {
	return (dir << iocDirShift) | (typ << iocTypeShift) | (nr << iocNrShift) | (size << iocSizeShift)
}

func ior(typ byte, nr, size uintptr) uintptr {
	return ioc(iocRead, uintptr(typ), nr, size)
}

// eviocgKey/eviocgSw 对应<linux/input.h>的EVIOCGKEY/EVIOCGSW宏，
// 读取按键/开关的当前状态位图
func eviocgKey(size int) uintptr {
	return ior('E', 0x18, uintptr(size))
}

func eviocgSw(size int) uintptr {
	return ior('E', 0x1b, uintptr(size))
}

func ioctl(fd int, req uintptr, buf []byte) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), req, uintptr(unsafe.Pointer(&buf[0])))
	if errno != 0 {
		return errno
	}
	return nil
}
