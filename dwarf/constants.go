// This file is part of dwarf2cpp.
//
// dwarf2cpp is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// dwarf2cpp is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with dwarf2cpp.  If not, see <https://www.gnu.org/licenses/>.

package dwarf

// DIE tags defined by DWARF version 1.
const (
	TagPadding           uint16 = 0x0000
	TagArrayType         uint16 = 0x0001
	TagClassType         uint16 = 0x0002
	TagEntryPoint        uint16 = 0x0003
	TagEnumerationType   uint16 = 0x0004
	TagFormalParameter   uint16 = 0x0005
	TagGlobalSubroutine  uint16 = 0x0006
	TagGlobalVariable    uint16 = 0x0007
	TagLabel             uint16 = 0x000a
	TagLexicalBlock      uint16 = 0x000b
	TagLocalVariable     uint16 = 0x000c
	TagMember            uint16 = 0x000d
	TagPointerType       uint16 = 0x000f
	TagReferenceType     uint16 = 0x0010
	TagCompileUnit       uint16 = 0x0011
	TagStringType        uint16 = 0x0012
	TagStructureType     uint16 = 0x0013
	TagSubroutine        uint16 = 0x0014
	TagSubroutineType    uint16 = 0x0015
	TagTypedef           uint16 = 0x0016
	TagUnionType         uint16 = 0x0017
	TagUnspecifiedParms  uint16 = 0x0018
	TagVariant           uint16 = 0x0019
	TagCommonBlock       uint16 = 0x001a
	TagCommonInclusion   uint16 = 0x001b
	TagInheritance       uint16 = 0x001c
	TagInlinedSubroutine uint16 = 0x001d
	TagModule            uint16 = 0x001e
	TagPtrToMemberType   uint16 = 0x001f
	TagSetType           uint16 = 0x0020
	TagSubrangeType      uint16 = 0x0021
	TagWithStmt          uint16 = 0x0022
)

// attribute forms. the low four bits of an attribute name select the form of
// the operand.
const (
	FormAddr   uint8 = 0x1
	FormRef    uint8 = 0x2
	FormBlock2 uint8 = 0x3
	FormBlock4 uint8 = 0x4
	FormData2  uint8 = 0x5
	FormData4  uint8 = 0x6
	FormData8  uint8 = 0x7
	FormString uint8 = 0x8
)

// attribute names defined by DWARF version 1. the form is encoded in the low
// four bits of the value.
const (
	AttrSibling     uint16 = 0x0010 | uint16(FormRef)
	AttrLocation    uint16 = 0x0020 | uint16(FormBlock2)
	AttrName        uint16 = 0x0030 | uint16(FormString)
	AttrFundType    uint16 = 0x0050 | uint16(FormData2)
	AttrModFundType uint16 = 0x0060 | uint16(FormBlock2)
	AttrUserDefType uint16 = 0x0070 | uint16(FormRef)
	AttrModUDType   uint16 = 0x0080 | uint16(FormBlock2)
	AttrOrdering    uint16 = 0x0090 | uint16(FormData2)
	AttrSubscrData  uint16 = 0x00a0 | uint16(FormBlock2)
	AttrByteSize    uint16 = 0x00b0 | uint16(FormData4)
	AttrBitOffset   uint16 = 0x00c0 | uint16(FormData2)
	AttrBitSize     uint16 = 0x00d0 | uint16(FormData4)
	AttrElementList uint16 = 0x00f0 | uint16(FormBlock4)
	AttrStmtList    uint16 = 0x0100 | uint16(FormData4)
	AttrLowPC       uint16 = 0x0110 | uint16(FormAddr)
	AttrHighPC      uint16 = 0x0120 | uint16(FormAddr)
	AttrLanguage    uint16 = 0x0130 | uint16(FormData4)
	AttrCompDir     uint16 = 0x01b0 | uint16(FormString)
	AttrProducer    uint16 = 0x01f0 | uint16(FormString)

	// producer extension. emitted by the SN Systems toolchain for C++
	// functions alongside the plain AT_name
	AttrMangledName uint16 = 0x2000 | uint16(FormString)
)

// FundType is a DWARF version 1 fundamental type identifier.
type FundType uint16

// fundamental types defined by DWARF version 1, plus the 64-bit and 128-bit
// producer extensions found in MIPS toolchain output.
const (
	FTChar            FundType = 0x0001
	FTSignedChar      FundType = 0x0002
	FTUnsignedChar    FundType = 0x0003
	FTShort           FundType = 0x0004
	FTSignedShort     FundType = 0x0005
	FTUnsignedShort   FundType = 0x0006
	FTInteger         FundType = 0x0007
	FTSignedInteger   FundType = 0x0008
	FTUnsignedInteger FundType = 0x0009
	FTLong            FundType = 0x000a
	FTSignedLong      FundType = 0x000b
	FTUnsignedLong    FundType = 0x000c
	FTPointer         FundType = 0x000d
	FTFloat           FundType = 0x000e
	FTDblPrecFloat    FundType = 0x000f
	FTExtPrecFloat    FundType = 0x0010
	FTComplex         FundType = 0x0011
	FTDblPrecComplex  FundType = 0x0012
	FTVoid            FundType = 0x0014
	FTBoolean         FundType = 0x0015

	// producer extensions
	FTLongLong         FundType = 0x8008
	FTSignedLongLong   FundType = 0x8108
	FTUnsignedLongLong FundType = 0x8208
	FTULong128         FundType = 0x8308
)

// type modifier bytes carried by AT_mod_fund_type and AT_mod_u_d_type
// attributes. stored innermost first.
const (
	ModPointerTo   uint8 = 0x01
	ModReferenceTo uint8 = 0x02
	ModConst       uint8 = 0x03
	ModVolatile    uint8 = 0x04
)

// location expression opcodes. OpDeref2, OpDeref and OpAdd take no operand;
// every other opcode is followed by a four byte word.
const (
	OpReg     uint8 = 0x01
	OpBasereg uint8 = 0x02
	OpAddr    uint8 = 0x03
	OpConst   uint8 = 0x04
	OpDeref2  uint8 = 0x05
	OpDeref   uint8 = 0x06
	OpAdd     uint8 = 0x07
)

// array ordering values for AT_ordering.
const (
	OrdRowMajor uint16 = 0x0000
	OrdColMajor uint16 = 0x0001
)

// subscript data format bytes. each record of an AT_subscr_data block is
// prefixed by one of these.
const (
	FmtFTCC uint8 = 0x0
	FmtFTCX uint8 = 0x1
	FmtFTXC uint8 = 0x2
	FmtFTXX uint8 = 0x3
	FmtUTCC uint8 = 0x4
	FmtUTCX uint8 = 0x5
	FmtUTXC uint8 = 0x6
	FmtUTXX uint8 = 0x7
	FmtET   uint8 = 0x8
)
