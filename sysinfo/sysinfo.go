package sysinfo

import (
	"fmt"

	gcpu "github.com/shirou/gopsutil/v4/cpu"
	gmem "github.com/shirou/gopsutil/v4/mem"
)

// PrintSystemInfo reports the host CPU and memory the benchmark runs on.
// Lookup failures are reported inline and never stop the run.
func PrintSystemInfo() {
	cpuInfo, err := gcpu.Info()
	if err != nil || len(cpuInfo) == 0 {
		fmt.Println("CPU Info: Unable to retrieve CPU information")
	} else {
		fmt.Printf("CPU Info: Model: %s, Cores: %d, Frequency: %.2f MHz\n",
			cpuInfo[0].ModelName, cpuInfo[0].Cores, cpuInfo[0].Mhz)
	}

	vm, err := gmem.VirtualMemory()
	if err != nil {
		fmt.Println("Memory Info: Unable to retrieve memory information")
	} else {
		fmt.Printf("Memory Info: Total: %.2f GB, Available: %.2f GB\n",
			float64(vm.Total)/(1024*1024*1024), float64(vm.Available)/(1024*1024*1024))
	}
}
