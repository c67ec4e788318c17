package bitcode

// Namespace prefixes every symbol exported by the precompiled builtins
// objects. Names must match those objects byte for byte.
const Namespace = "roc_builtins"

// Width-indexed numeric operations.
var (
	NumAsin     = FloatIntrinsic(Namespace + ".num.asin")
	NumAcos     = FloatIntrinsic(Namespace + ".num.acos")
	NumAtan     = FloatIntrinsic(Namespace + ".num.atan")
	NumIsFinite = FloatIntrinsic(Namespace + ".num.is_finite")
	NumPowInt   = IntIntrinsic(Namespace + ".num.pow_int")
	NumDivCeil  = IntIntrinsic(Namespace + ".num.div_ceil")
	NumRound    = FloatIntrinsic(Namespace + ".num.round")

	StrFromInt = IntIntrinsic(Namespace + ".str.from_int")
	StrToInt   = IntIntrinsic(Namespace + ".str.to_int")
	StrToFloat = FloatIntrinsic(Namespace + ".str.to_float")
)

// Overflow-reporting arithmetic provided by LLVM itself. The signed and
// unsigned families are distinct intrinsics.
var (
	LLVMAddWithOverflow = LLVMIntIntrinsic("llvm.sadd.with.overflow", "llvm.uadd.with.overflow")
	LLVMSubWithOverflow = LLVMIntIntrinsic("llvm.ssub.with.overflow", "llvm.usub.with.overflow")
	LLVMMulWithOverflow = LLVMIntIntrinsic("llvm.smul.with.overflow", "llvm.umul.with.overflow")
)

// Width-independent runtime symbols.
const (
	NumBytesToU16 = Namespace + ".num.bytes_to_u16"
	NumBytesToU32 = Namespace + ".num.bytes_to_u32"

	StrInit                  = Namespace + ".str.init"
	StrCountSegments         = Namespace + ".str.count_segments"
	StrConcat                = Namespace + ".str.concat"
	StrJoinWith              = Namespace + ".str.joinWith"
	StrSplitInPlace          = Namespace + ".str.str_split_in_place"
	StrCountGraphemeClusters = Namespace + ".str.count_grapheme_clusters"
	StrStartsWith            = Namespace + ".str.starts_with"
	StrStartsWithCodePt      = Namespace + ".str.starts_with_code_point"
	StrEndsWith              = Namespace + ".str.ends_with"
	StrNumberOfBytes         = Namespace + ".str.number_of_bytes"
	StrFromFloat             = Namespace + ".str.from_float"
	StrToDecimal             = Namespace + ".str.to_decimal"
	StrEqual                 = Namespace + ".str.equal"
	StrToUTF8                = Namespace + ".str.to_utf8"
	StrFromUTF8              = Namespace + ".str.from_utf8"
	StrFromUTF8Range         = Namespace + ".str.from_utf8_range"
	StrRepeat                = Namespace + ".str.repeat"
	StrTrim                  = Namespace + ".str.trim"
	StrTrimLeft              = Namespace + ".str.trim_left"
	StrTrimRight             = Namespace + ".str.trim_right"

	DictHash         = Namespace + ".dict.hash"
	DictHashStr      = Namespace + ".dict.hash_str"
	DictLen          = Namespace + ".dict.len"
	DictEmpty        = Namespace + ".dict.empty"
	DictInsert       = Namespace + ".dict.insert"
	DictRemove       = Namespace + ".dict.remove"
	DictContains     = Namespace + ".dict.contains"
	DictGet          = Namespace + ".dict.get"
	DictElementsRc   = Namespace + ".dict.elementsRc"
	DictKeys         = Namespace + ".dict.keys"
	DictValues       = Namespace + ".dict.values"
	DictUnion        = Namespace + ".dict.union"
	DictDifference   = Namespace + ".dict.difference"
	DictIntersection = Namespace + ".dict.intersection"
	DictWalk         = Namespace + ".dict.walk"

	SetFromList = Namespace + ".dict.set_from_list"

	ListMap            = Namespace + ".list.map"
	ListMap2           = Namespace + ".list.map2"
	ListMap3           = Namespace + ".list.map3"
	ListMap4           = Namespace + ".list.map4"
	ListMapWithIndex   = Namespace + ".list.map_with_index"
	ListKeepIf         = Namespace + ".list.keep_if"
	ListKeepOks        = Namespace + ".list.keep_oks"
	ListKeepErrs       = Namespace + ".list.keep_errs"
	ListWalk           = Namespace + ".list.walk"
	ListWalkUntil      = Namespace + ".list.walkUntil"
	ListWalkBackwards  = Namespace + ".list.walk_backwards"
	ListContains       = Namespace + ".list.contains"
	ListRepeat         = Namespace + ".list.repeat"
	ListAppend         = Namespace + ".list.append"
	ListPrepend        = Namespace + ".list.prepend"
	ListSublist        = Namespace + ".list.sublist"
	ListDropAt         = Namespace + ".list.drop_at"
	ListSwap           = Namespace + ".list.swap"
	ListSingle         = Namespace + ".list.single"
	ListJoin           = Namespace + ".list.join"
	ListRange          = Namespace + ".list.range"
	ListReverse        = Namespace + ".list.reverse"
	ListSortWith       = Namespace + ".list.sort_with"
	ListConcat         = Namespace + ".list.concat"
	ListReplace        = Namespace + ".list.replace"
	ListReplaceInPlace = Namespace + ".list.replace_in_place"
	ListAny            = Namespace + ".list.any"
	ListAll            = Namespace + ".list.all"
	ListFindUnsafe     = Namespace + ".list.find_unsafe"

	DecFromStr         = Namespace + ".dec.from_str"
	DecFromF64         = Namespace + ".dec.from_f64"
	DecEq              = Namespace + ".dec.eq"
	DecNeq             = Namespace + ".dec.neq"
	DecNegate          = Namespace + ".dec.negate"
	DecAddWithOverflow = Namespace + ".dec.add_with_overflow"
	DecSubWithOverflow = Namespace + ".dec.sub_with_overflow"
	DecMulWithOverflow = Namespace + ".dec.mul_with_overflow"
	DecDiv             = Namespace + ".dec.div"

	UtilsTestPanic         = Namespace + ".utils.test_panic"
	UtilsIncref            = Namespace + ".utils.incref"
	UtilsDecref            = Namespace + ".utils.decref"
	UtilsDecrefCheckNull   = Namespace + ".utils.decref_check_null"
	UtilsExpectFailed      = Namespace + ".expect.expect_failed"
	UtilsGetExpectFailures = Namespace + ".expect.get_expect_failures"
	UtilsDeinitFailures    = Namespace + ".expect.deinit_failures"
)
