// SPDX-License-Identifier: Apache-2.0

package rules

// moduleReceivers qualify renames of module-level functions and
// classes. Both the old-style "gflags" import name and the plain
// "flags" alias are accepted.
var moduleReceivers = []string{"flags.", "gflags."}

// flagValuesReceivers qualify renames of FlagValues methods, which are
// only safe to rewrite on the conventional FLAGS object. A same-named
// method on an unrelated object must not be touched.
var flagValuesReceivers = []string{"FLAGS."}

// builtinRules is the authoritative rename table for the gflags to
// absl.flags migration. Order is load-bearing for the UseGnuGetOpt
// pair: the keyword-argument form has to be tried first.
var builtinRules = []Rule{
	{Old: "DEFINE_multistring", New: "DEFINE_multi_string", Receivers: moduleReceivers},
	{Old: "DEFINE_multi_int", New: "DEFINE_multi_integer", Receivers: moduleReceivers},
	{Old: "RegisterValidator", New: "register_validator", Receivers: moduleReceivers},
	{Old: "Validator", New: "validator", Receivers: moduleReceivers},
	{Old: "RegisterMultiFlagsValidator", New: "register_multi_flags_validator", Receivers: moduleReceivers},
	{Old: "MultiFlagsValidator", New: "multi_flags_validator", Receivers: moduleReceivers},
	{Old: "MarkFlagAsRequired", New: "mark_flag_as_required", Receivers: moduleReceivers},
	{Old: "MarkFlagsAsRequired", New: "mark_flags_as_required", Receivers: moduleReceivers},
	{Old: "MarkFlagsAsMutualExclusive", New: "mark_flags_as_mutual_exclusive", Receivers: moduleReceivers},
	{Old: "DECLARE_key_flag", New: "declare_key_flag", Receivers: moduleReceivers},
	{Old: "ADOPT_module_key_flags", New: "adopt_module_key_flags", Receivers: moduleReceivers},
	{Old: "DISCLAIM_key_flags", New: "disclaim_key_flags", Receivers: moduleReceivers},
	{Old: "GetHelpWidth", New: "get_help_width", Receivers: moduleReceivers},
	{Old: "TextWrap", New: "text_wrap", Receivers: moduleReceivers},
	{Old: "FlagDictToArgs", New: "flag_dict_to_args", Receivers: moduleReceivers},
	{Old: "DocToHelp", New: "doc_to_help", Receivers: moduleReceivers},
	{Old: "FlagsError", New: "Error", Receivers: moduleReceivers},
	{Old: "IllegalFlagValue", New: "IllegalFlagValueError", Receivers: moduleReceivers},
	{Old: "AppendFlagsIntoFile", New: "append_flags_into_file", Receivers: flagValuesReceivers},
	{Old: "AppendFlagValues", New: "append_flag_values", Receivers: flagValuesReceivers},
	{Old: "FindModuleDefiningFlag", New: "find_module_defining_flag", Receivers: flagValuesReceivers},
	{Old: "FindModuleIdDefiningFlag", New: "find_module_id_defining_flag", Receivers: flagValuesReceivers},
	{Old: "FlagsByModuleDict", New: "flags_by_module_dict", Receivers: flagValuesReceivers},
	{Old: "FlagsByModuleIdDict", New: "flags_by_module_id_dict", Receivers: flagValuesReceivers},
	{Old: "FlagsIntoString", New: "flags_into_string", Receivers: flagValuesReceivers},
	{Old: "FlagValuesDict", New: "flag_values_dict", Receivers: flagValuesReceivers},
	{Old: "IsGnuGetOpt", New: "is_gnu_getopt", Receivers: flagValuesReceivers},
	{Old: "IsParsed", New: "is_parsed", Receivers: flagValuesReceivers},
	{Old: "KeyFlagsByModuleDict", New: "key_flags_by_module_dict", Receivers: flagValuesReceivers},
	{Old: "MainModuleHelp", New: "main_module_help", Receivers: flagValuesReceivers},
	{Old: "MarkAsParsed", New: "mark_as_parsed", Receivers: flagValuesReceivers},
	{Old: "ModuleHelp", New: "module_help", Receivers: flagValuesReceivers},
	{Old: "ReadFlagsFromFiles", New: "read_flags_from_files", Receivers: flagValuesReceivers},
	{Old: "RemoveFlagValues", New: "remove_flag_values", Receivers: flagValuesReceivers},
	{Old: "Reset", New: "unparse_flags", Receivers: flagValuesReceivers},
	{Old: "SetDefault", New: "set_default", Receivers: flagValuesReceivers},
	{Old: "WriteHelpInXMLFormat", New: "write_help_in_xml_format", Receivers: flagValuesReceivers},
	{
		Old:     "UseGnuGetOpt",
		New:     "set_gnu_getopt",
		Pattern: `\bFLAGS\.UseGnuGetOpt\(use_gnu_getopt=`,
		Replace: `FLAGS.set_gnu_getopt(gnu_getopt=`,
	},
	{
		Old:     "UseGnuGetOpt",
		New:     "set_gnu_getopt",
		Pattern: `\bFLAGS\.UseGnuGetOpt\(`,
		Replace: `FLAGS.set_gnu_getopt(`,
	},
}

// Builtin returns the compiled built-in rename table.
func Builtin() (*Set, error) {
	return NewSet(builtinRules)
}
