package hyphen

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/

// The built-in English digram weights, inherited from the classic Bell Labs
// formatters (hyphenation tables, Bell Telephone Laboratories, 1979).

var tabBxh = [13]byte{
	0o060, 0o000, 0o040, 0o000, 0o040, 0o000, 0o000, 0o040, 0o000, 0o000, 0o040, 0o000, 0o040,
}

var tabHxx = [338]byte{
	0o006, 0o042, 0o041, 0o123, 0o021, 0o024, 0o063, 0o042, 0o002, 0o043, 0o021, 0o001, 0o022,
	0o140, 0o000, 0o200, 0o003, 0o260, 0o006, 0o000, 0o160, 0o007, 0o000, 0o140, 0o000, 0o320,
	0o220, 0o000, 0o160, 0o005, 0o240, 0o010, 0o000, 0o100, 0o006, 0o000, 0o200, 0o000, 0o320,
	0o240, 0o000, 0o120, 0o003, 0o140, 0o000, 0o000, 0o240, 0o010, 0o000, 0o220, 0o000, 0o160,
	0o042, 0o023, 0o041, 0o040, 0o040, 0o022, 0o043, 0o041, 0o030, 0o064, 0o021, 0o000, 0o041,
	0o100, 0o000, 0o140, 0o000, 0o220, 0o006, 0o000, 0o140, 0o003, 0o000, 0o200, 0o000, 0o000,
	0o200, 0o000, 0o120, 0o002, 0o220, 0o010, 0o000, 0o160, 0o006, 0o000, 0o140, 0o000, 0o320,
	0o020, 0o000, 0o020, 0o000, 0o020, 0o000, 0o000, 0o020, 0o000, 0o000, 0o020, 0o000, 0o000,
	0o043, 0o163, 0o065, 0o044, 0o022, 0o043, 0o104, 0o042, 0o061, 0o146, 0o061, 0o000, 0o007,
	0o100, 0o000, 0o140, 0o000, 0o040, 0o000, 0o000, 0o100, 0o000, 0o000, 0o120, 0o000, 0o000,
	0o140, 0o000, 0o040, 0o011, 0o060, 0o004, 0o001, 0o120, 0o003, 0o000, 0o140, 0o000, 0o040,
	0o200, 0o000, 0o100, 0o000, 0o140, 0o000, 0o000, 0o140, 0o000, 0o000, 0o140, 0o000, 0o240,
	0o200, 0o000, 0o140, 0o000, 0o160, 0o000, 0o000, 0o220, 0o000, 0o000, 0o140, 0o000, 0o240,
	0o200, 0o000, 0o140, 0o000, 0o160, 0o000, 0o000, 0o220, 0o000, 0o000, 0o060, 0o000, 0o240,
	0o021, 0o043, 0o041, 0o121, 0o040, 0o023, 0o042, 0o003, 0o142, 0o042, 0o061, 0o001, 0o022,
	0o120, 0o000, 0o140, 0o010, 0o140, 0o010, 0o000, 0o140, 0o002, 0o000, 0o120, 0o000, 0o120,
	0o000, 0o000, 0o000, 0o000, 0o360, 0o000, 0o000, 0o000, 0o000, 0o000, 0o160, 0o000, 0o000,
	0o100, 0o000, 0o040, 0o005, 0o120, 0o000, 0o000, 0o100, 0o000, 0o000, 0o060, 0o000, 0o140,
	0o140, 0o040, 0o100, 0o001, 0o240, 0o041, 0o000, 0o242, 0o000, 0o002, 0o140, 0o000, 0o100,
	0o240, 0o000, 0o120, 0o002, 0o200, 0o000, 0o000, 0o320, 0o007, 0o000, 0o240, 0o000, 0o340,
	0o101, 0o021, 0o041, 0o020, 0o040, 0o005, 0o042, 0o121, 0o002, 0o021, 0o201, 0o000, 0o020,
	0o160, 0o000, 0o100, 0o000, 0o140, 0o000, 0o000, 0o160, 0o006, 0o000, 0o220, 0o000, 0o140,
	0o140, 0o000, 0o020, 0o001, 0o020, 0o000, 0o000, 0o100, 0o001, 0o000, 0o300, 0o000, 0o000,
	0o000, 0o000, 0o000, 0o000, 0o000, 0o000, 0o000, 0o000, 0o000, 0o000, 0o000, 0o000, 0o000,
	0o106, 0o041, 0o040, 0o147, 0o040, 0o000, 0o063, 0o041, 0o001, 0o102, 0o160, 0o002, 0o002,
	0o300, 0o000, 0o040, 0o017, 0o140, 0o017, 0o000, 0o240, 0o000, 0o000, 0o140, 0o000, 0o120,
}

var tabBxxh = [338]byte{
	0o005, 0o150, 0o153, 0o062, 0o062, 0o246, 0o152, 0o127, 0o146, 0o203, 0o310, 0o017, 0o206,
	0o100, 0o000, 0o120, 0o000, 0o140, 0o000, 0o000, 0o100, 0o000, 0o000, 0o120, 0o000, 0o060,
	0o100, 0o000, 0o040, 0o000, 0o060, 0o000, 0o000, 0o060, 0o000, 0o000, 0o220, 0o000, 0o040,
	0o100, 0o000, 0o120, 0o000, 0o200, 0o000, 0o000, 0o100, 0o000, 0o000, 0o140, 0o000, 0o060,
	0o043, 0o142, 0o046, 0o140, 0o062, 0o147, 0o210, 0o131, 0o046, 0o106, 0o246, 0o017, 0o111,
	0o060, 0o000, 0o020, 0o000, 0o060, 0o000, 0o000, 0o040, 0o000, 0o000, 0o100, 0o000, 0o000,
	0o060, 0o000, 0o040, 0o000, 0o040, 0o000, 0o000, 0o040, 0o000, 0o000, 0o100, 0o000, 0o040,
	0o100, 0o000, 0o100, 0o000, 0o100, 0o000, 0o000, 0o040, 0o000, 0o000, 0o100, 0o000, 0o140,
	0o066, 0o045, 0o145, 0o140, 0o000, 0o070, 0o377, 0o030, 0o130, 0o103, 0o003, 0o017, 0o006,
	0o040, 0o000, 0o040, 0o000, 0o020, 0o000, 0o000, 0o040, 0o000, 0o000, 0o100, 0o000, 0o000,
	0o200, 0o000, 0o020, 0o000, 0o140, 0o000, 0o000, 0o120, 0o000, 0o000, 0o120, 0o000, 0o040,
	0o120, 0o000, 0o040, 0o000, 0o060, 0o000, 0o000, 0o060, 0o000, 0o000, 0o160, 0o000, 0o040,
	0o120, 0o000, 0o040, 0o000, 0o120, 0o000, 0o000, 0o040, 0o000, 0o000, 0o160, 0o000, 0o040,
	0o120, 0o000, 0o020, 0o000, 0o140, 0o000, 0o000, 0o120, 0o000, 0o000, 0o140, 0o000, 0o040,
	0o051, 0o126, 0o150, 0o140, 0o060, 0o210, 0o146, 0o006, 0o006, 0o165, 0o003, 0o017, 0o244,
	0o120, 0o000, 0o040, 0o000, 0o160, 0o000, 0o000, 0o140, 0o000, 0o000, 0o060, 0o000, 0o140,
	0o000, 0o000, 0o000, 0o000, 0o000, 0o000, 0o000, 0o000, 0o000, 0o000, 0o000, 0o000, 0o000,
	0o140, 0o000, 0o140, 0o000, 0o060, 0o000, 0o000, 0o100, 0o000, 0o000, 0o140, 0o000, 0o020,
	0o120, 0o000, 0o020, 0o000, 0o060, 0o000, 0o000, 0o060, 0o000, 0o000, 0o060, 0o000, 0o040,
	0o140, 0o000, 0o020, 0o000, 0o100, 0o000, 0o000, 0o140, 0o000, 0o000, 0o140, 0o000, 0o020,
	0o070, 0o125, 0o051, 0o162, 0o120, 0o105, 0o126, 0o104, 0o006, 0o044, 0o000, 0o017, 0o052,
	0o140, 0o000, 0o020, 0o000, 0o140, 0o000, 0o000, 0o060, 0o000, 0o000, 0o060, 0o000, 0o040,
	0o020, 0o000, 0o000, 0o000, 0o020, 0o000, 0o000, 0o000, 0o000, 0o000, 0o000, 0o000, 0o060,
	0o140, 0o000, 0o160, 0o000, 0o200, 0o000, 0o000, 0o140, 0o000, 0o000, 0o000, 0o000, 0o240,
	0o065, 0o042, 0o060, 0o200, 0o000, 0o210, 0o222, 0o146, 0o006, 0o204, 0o220, 0o012, 0o003,
	0o240, 0o000, 0o020, 0o000, 0o120, 0o000, 0o000, 0o200, 0o000, 0o000, 0o200, 0o000, 0o240,
}

var tabXhx = [338]byte{
	0o032, 0o146, 0o042, 0o107, 0o076, 0o102, 0o042, 0o146, 0o202, 0o050, 0o006, 0o000, 0o051,
	0o036, 0o377, 0o057, 0o013, 0o057, 0o366, 0o377, 0o057, 0o001, 0o377, 0o057, 0o000, 0o040,
	0o037, 0o377, 0o020, 0o000, 0o100, 0o022, 0o377, 0o057, 0o362, 0o116, 0o100, 0o000, 0o017,
	0o057, 0o377, 0o057, 0o031, 0o137, 0o363, 0o377, 0o037, 0o362, 0o270, 0o077, 0o000, 0o117,
	0o074, 0o142, 0o012, 0o236, 0o076, 0o125, 0o063, 0o165, 0o341, 0o046, 0o047, 0o000, 0o024,
	0o020, 0o017, 0o075, 0o377, 0o040, 0o001, 0o377, 0o017, 0o001, 0o204, 0o020, 0o000, 0o040,
	0o057, 0o017, 0o057, 0o340, 0o140, 0o362, 0o314, 0o117, 0o003, 0o302, 0o100, 0o000, 0o057,
	0o057, 0o357, 0o077, 0o017, 0o100, 0o366, 0o314, 0o057, 0o342, 0o346, 0o037, 0o000, 0o060,
	0o252, 0o145, 0o072, 0o157, 0o377, 0o165, 0o063, 0o066, 0o164, 0o050, 0o363, 0o000, 0o362,
	0o000, 0o000, 0o020, 0o000, 0o020, 0o000, 0o000, 0o017, 0o000, 0o000, 0o020, 0o000, 0o000,
	0o117, 0o017, 0o237, 0o377, 0o200, 0o354, 0o125, 0o110, 0o004, 0o257, 0o000, 0o000, 0o300,
	0o057, 0o367, 0o054, 0o357, 0o157, 0o216, 0o314, 0o114, 0o217, 0o353, 0o053, 0o000, 0o057,
	0o077, 0o213, 0o077, 0o077, 0o177, 0o317, 0o377, 0o114, 0o377, 0o352, 0o077, 0o000, 0o076,
	0o077, 0o213, 0o077, 0o077, 0o157, 0o177, 0o377, 0o054, 0o377, 0o352, 0o117, 0o000, 0o075,
	0o125, 0o230, 0o065, 0o216, 0o057, 0o066, 0o063, 0o047, 0o345, 0o126, 0o011, 0o000, 0o033,
	0o057, 0o377, 0o051, 0o360, 0o120, 0o361, 0o273, 0o056, 0o001, 0o256, 0o057, 0o000, 0o060,
	0o000, 0o000, 0o000, 0o000, 0o000, 0o000, 0o000, 0o000, 0o000, 0o000, 0o000, 0o000, 0o000,
	0o076, 0o310, 0o056, 0o310, 0o137, 0o174, 0o273, 0o055, 0o335, 0o266, 0o033, 0o000, 0o155,
	0o077, 0o157, 0o057, 0o360, 0o057, 0o063, 0o042, 0o024, 0o077, 0o206, 0o020, 0o000, 0o040,
	0o057, 0o037, 0o077, 0o360, 0o100, 0o365, 0o377, 0o037, 0o362, 0o176, 0o050, 0o000, 0o026,
	0o167, 0o146, 0o042, 0o112, 0o077, 0o110, 0o062, 0o254, 0o366, 0o052, 0o377, 0o000, 0o163,
	0o060, 0o000, 0o040, 0o000, 0o120, 0o000, 0o377, 0o060, 0o012, 0o000, 0o037, 0o000, 0o257,
	0o037, 0o232, 0o157, 0o361, 0o040, 0o003, 0o125, 0o010, 0o001, 0o256, 0o000, 0o000, 0o340,
	0o377, 0o377, 0o377, 0o377, 0o377, 0o377, 0o377, 0o377, 0o377, 0o377, 0o377, 0o017, 0o277,
	0o253, 0o315, 0o257, 0o216, 0o377, 0o206, 0o146, 0o306, 0o371, 0o126, 0o232, 0o000, 0o004,
	0o057, 0o012, 0o100, 0o360, 0o160, 0o360, 0o000, 0o040, 0o000, 0o017, 0o157, 0o000, 0o176,
}

var tabXxh = [338]byte{
	0o045, 0o150, 0o154, 0o162, 0o042, 0o246, 0o210, 0o147, 0o152, 0o103, 0o230, 0o017, 0o206,
	0o100, 0o000, 0o040, 0o000, 0o140, 0o000, 0o000, 0o100, 0o000, 0o021, 0o120, 0o017, 0o060,
	0o100, 0o000, 0o040, 0o002, 0o140, 0o320, 0o000, 0o060, 0o000, 0o001, 0o220, 0o017, 0o040,
	0o100, 0o001, 0o120, 0o001, 0o241, 0o000, 0o000, 0o100, 0o000, 0o020, 0o140, 0o017, 0o060,
	0o023, 0o162, 0o046, 0o142, 0o022, 0o207, 0o210, 0o131, 0o052, 0o106, 0o250, 0o017, 0o110,
	0o060, 0o000, 0o042, 0o000, 0o160, 0o000, 0o000, 0o040, 0o000, 0o212, 0o100, 0o017, 0o000,
	0o140, 0o000, 0o040, 0o002, 0o140, 0o000, 0o000, 0o120, 0o000, 0o040, 0o120, 0o017, 0o040,
	0o100, 0o000, 0o100, 0o000, 0o140, 0o001, 0o021, 0o140, 0o000, 0o046, 0o100, 0o017, 0o140,
	0o066, 0o045, 0o025, 0o201, 0o020, 0o130, 0o146, 0o030, 0o130, 0o103, 0o025, 0o017, 0o006,
	0o100, 0o000, 0o040, 0o000, 0o020, 0o000, 0o000, 0o040, 0o000, 0o000, 0o200, 0o017, 0o000,
	0o200, 0o000, 0o020, 0o001, 0o140, 0o000, 0o000, 0o140, 0o000, 0o000, 0o120, 0o017, 0o040,
	0o120, 0o026, 0o042, 0o020, 0o140, 0o161, 0o042, 0o143, 0o000, 0o022, 0o162, 0o017, 0o040,
	0o121, 0o042, 0o060, 0o020, 0o140, 0o200, 0o000, 0o123, 0o000, 0o021, 0o220, 0o017, 0o041,
	0o121, 0o042, 0o060, 0o120, 0o140, 0o200, 0o000, 0o123, 0o000, 0o021, 0o160, 0o017, 0o041,
	0o051, 0o126, 0o150, 0o141, 0o060, 0o210, 0o146, 0o066, 0o026, 0o165, 0o026, 0o017, 0o247,
	0o120, 0o000, 0o040, 0o003, 0o160, 0o000, 0o000, 0o140, 0o000, 0o021, 0o100, 0o017, 0o140,
	0o000, 0o000, 0o000, 0o000, 0o200, 0o000, 0o000, 0o000, 0o000, 0o000, 0o000, 0o017, 0o000,
	0o141, 0o023, 0o122, 0o040, 0o160, 0o143, 0o042, 0o142, 0o000, 0o047, 0o143, 0o017, 0o020,
	0o120, 0o000, 0o040, 0o006, 0o140, 0o060, 0o000, 0o141, 0o000, 0o026, 0o100, 0o017, 0o040,
	0o140, 0o000, 0o020, 0o007, 0o100, 0o000, 0o000, 0o140, 0o000, 0o001, 0o140, 0o017, 0o020,
	0o110, 0o125, 0o051, 0o162, 0o120, 0o125, 0o127, 0o104, 0o006, 0o104, 0o000, 0o017, 0o052,
	0o140, 0o000, 0o040, 0o000, 0o160, 0o000, 0o000, 0o140, 0o000, 0o000, 0o060, 0o017, 0o000,
	0o040, 0o005, 0o020, 0o000, 0o040, 0o313, 0o231, 0o030, 0o000, 0o140, 0o000, 0o017, 0o056,
	0o140, 0o000, 0o160, 0o000, 0o200, 0o000, 0o000, 0o140, 0o000, 0o000, 0o000, 0o017, 0o240,
	0o065, 0o042, 0o060, 0o040, 0o000, 0o206, 0o231, 0o146, 0o006, 0o224, 0o220, 0o017, 0o004,
	0o240, 0o000, 0o020, 0o000, 0o140, 0o000, 0o000, 0o220, 0o000, 0o000, 0o200, 0o017, 0o141,
}

