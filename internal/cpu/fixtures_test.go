package cpu

// Output of `psrinfo -v -p | grep Hz` on a two socket x86 host.
const x86Body = `x86 (GenuineIntel 206D7 family 6 model 45 step 7 clock 2600 MHz)
      Intel(r) Xeon(r) CPU E5-2670 0 @ 2.60GHz
    x86 (CrazyTown 206D7 family 12 model 93 step 9 clock 2900 MHz)
      Intel(r) Xeon(r) CPU E5-2690 0 @ 2.90GHz`

// Output of `psrinfo -v -p` on a four socket SPARC64-VII host.
const sparcBody = `The physical processor has 4 cores and 8 virtual processors (32-39)
  The core has 2 virtual processors (32 33)
  The core has 2 virtual processors (34 35)
  The core has 2 virtual processors (36 37)
  The core has 2 virtual processors (38 39)
    SPARC64-VII (portid 1056 impl 0x7 ver 0x91 clock 2400 MHz)
The physical processor has 4 cores and 8 virtual processors (40-47)
  The core has 2 virtual processors (40 41)
  The core has 2 virtual processors (42 43)
  The core has 2 virtual processors (44 45)
  The core has 2 virtual processors (46 47)
    SPARC64-VII (portid 1064 impl 0x7 ver 0x91 clock 2400 MHz)
The physical processor has 4 cores and 8 virtual processors (48-55)
  The core has 2 virtual processors (48 49)
  The core has 2 virtual processors (50 51)
  The core has 2 virtual processors (52 53)
  The core has 2 virtual processors (54 55)
    SPARC64-VII (portid 1072 impl 0x7 ver 0x91 clock 2400 MHz)
The physical processor has 4 cores and 8 virtual processors (56-63)
  The core has 2 virtual processors (56 57)
  The core has 2 virtual processors (58 59)
  The core has 2 virtual processors (60 61)
  The core has 2 virtual processors (62 63)
    SPARC64-VII (portid 1080 impl 0x7 ver 0x91 clock 2400 MHz)`
