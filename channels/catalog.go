package channels

import (
	"github.com/viam-modules/wifiphy/standards"
)

// 2.4 GHz, 5 GHz and 6 GHz frequency channels.
// 802.11b uses a width of 22 MHz while the OFDM standards use 20 MHz.
var frequencyChannels = []Info{
	// 2.4 GHz 20 and 22 MHz channels
	{1, 2412, 22, standards.Band2_4GHz, standards.DSSS},
	{1, 2412, 20, standards.Band2_4GHz, standards.OFDM},
	{2, 2417, 22, standards.Band2_4GHz, standards.DSSS},
	{2, 2417, 20, standards.Band2_4GHz, standards.OFDM},
	{3, 2422, 22, standards.Band2_4GHz, standards.DSSS},
	{3, 2422, 20, standards.Band2_4GHz, standards.OFDM},
	{4, 2427, 22, standards.Band2_4GHz, standards.DSSS},
	{4, 2427, 20, standards.Band2_4GHz, standards.OFDM},
	{5, 2432, 22, standards.Band2_4GHz, standards.DSSS},
	{5, 2432, 20, standards.Band2_4GHz, standards.OFDM},
	{6, 2437, 22, standards.Band2_4GHz, standards.DSSS},
	{6, 2437, 20, standards.Band2_4GHz, standards.OFDM},
	{7, 2442, 22, standards.Band2_4GHz, standards.DSSS},
	{7, 2442, 20, standards.Band2_4GHz, standards.OFDM},
	{8, 2447, 22, standards.Band2_4GHz, standards.DSSS},
	{8, 2447, 20, standards.Band2_4GHz, standards.OFDM},
	{9, 2452, 22, standards.Band2_4GHz, standards.DSSS},
	{9, 2452, 20, standards.Band2_4GHz, standards.OFDM},
	{10, 2457, 22, standards.Band2_4GHz, standards.DSSS},
	{10, 2457, 20, standards.Band2_4GHz, standards.OFDM},
	{11, 2462, 22, standards.Band2_4GHz, standards.DSSS},
	{11, 2462, 20, standards.Band2_4GHz, standards.OFDM},
	{12, 2467, 22, standards.Band2_4GHz, standards.DSSS},
	{12, 2467, 20, standards.Band2_4GHz, standards.OFDM},
	{13, 2472, 22, standards.Band2_4GHz, standards.DSSS},
	{13, 2472, 20, standards.Band2_4GHz, standards.OFDM},
	// channel 14 is only defined for 802.11b
	{14, 2484, 22, standards.Band2_4GHz, standards.DSSS},
	// 2.4 GHz 40 MHz channels
	{3, 2422, 40, standards.Band2_4GHz, standards.OFDM},
	{4, 2427, 40, standards.Band2_4GHz, standards.OFDM},
	{5, 2432, 40, standards.Band2_4GHz, standards.OFDM},
	{6, 2437, 40, standards.Band2_4GHz, standards.OFDM},
	{7, 2442, 40, standards.Band2_4GHz, standards.OFDM},
	{8, 2447, 40, standards.Band2_4GHz, standards.OFDM},
	{9, 2452, 40, standards.Band2_4GHz, standards.OFDM},
	{10, 2457, 40, standards.Band2_4GHz, standards.OFDM},
	{11, 2462, 40, standards.Band2_4GHz, standards.OFDM},

	// 5 GHz 20 MHz channels
	{36, 5180, 20, standards.Band5GHz, standards.OFDM},
	{40, 5200, 20, standards.Band5GHz, standards.OFDM},
	{44, 5220, 20, standards.Band5GHz, standards.OFDM},
	{48, 5240, 20, standards.Band5GHz, standards.OFDM},
	{52, 5260, 20, standards.Band5GHz, standards.OFDM},
	{56, 5280, 20, standards.Band5GHz, standards.OFDM},
	{60, 5300, 20, standards.Band5GHz, standards.OFDM},
	{64, 5320, 20, standards.Band5GHz, standards.OFDM},
	{100, 5500, 20, standards.Band5GHz, standards.OFDM},
	{104, 5520, 20, standards.Band5GHz, standards.OFDM},
	{108, 5540, 20, standards.Band5GHz, standards.OFDM},
	{112, 5560, 20, standards.Band5GHz, standards.OFDM},
	{116, 5580, 20, standards.Band5GHz, standards.OFDM},
	{120, 5600, 20, standards.Band5GHz, standards.OFDM},
	{124, 5620, 20, standards.Band5GHz, standards.OFDM},
	{128, 5640, 20, standards.Band5GHz, standards.OFDM},
	{132, 5660, 20, standards.Band5GHz, standards.OFDM},
	{136, 5680, 20, standards.Band5GHz, standards.OFDM},
	{140, 5700, 20, standards.Band5GHz, standards.OFDM},
	{144, 5720, 20, standards.Band5GHz, standards.OFDM},
	{149, 5745, 20, standards.Band5GHz, standards.OFDM},
	{153, 5765, 20, standards.Band5GHz, standards.OFDM},
	{157, 5785, 20, standards.Band5GHz, standards.OFDM},
	{161, 5805, 20, standards.Band5GHz, standards.OFDM},
	{165, 5825, 20, standards.Band5GHz, standards.OFDM},
	{169, 5845, 20, standards.Band5GHz, standards.OFDM},
	{173, 5865, 20, standards.Band5GHz, standards.OFDM},
	{177, 5885, 20, standards.Band5GHz, standards.OFDM},
	{181, 5905, 20, standards.Band5GHz, standards.OFDM},
	// 5 GHz 40 MHz channels
	{38, 5190, 40, standards.Band5GHz, standards.OFDM},
	{46, 5230, 40, standards.Band5GHz, standards.OFDM},
	{54, 5270, 40, standards.Band5GHz, standards.OFDM},
	{62, 5310, 40, standards.Band5GHz, standards.OFDM},
	{102, 5510, 40, standards.Band5GHz, standards.OFDM},
	{110, 5550, 40, standards.Band5GHz, standards.OFDM},
	{118, 5590, 40, standards.Band5GHz, standards.OFDM},
	{126, 5630, 40, standards.Band5GHz, standards.OFDM},
	{134, 5670, 40, standards.Band5GHz, standards.OFDM},
	{142, 5710, 40, standards.Band5GHz, standards.OFDM},
	{151, 5755, 40, standards.Band5GHz, standards.OFDM},
	{159, 5795, 40, standards.Band5GHz, standards.OFDM},
	{167, 5835, 40, standards.Band5GHz, standards.OFDM},
	{175, 5875, 40, standards.Band5GHz, standards.OFDM},
	// 5 GHz 80 MHz channels
	{42, 5210, 80, standards.Band5GHz, standards.OFDM},
	{58, 5290, 80, standards.Band5GHz, standards.OFDM},
	{106, 5530, 80, standards.Band5GHz, standards.OFDM},
	{122, 5610, 80, standards.Band5GHz, standards.OFDM},
	{138, 5690, 80, standards.Band5GHz, standards.OFDM},
	{155, 5775, 80, standards.Band5GHz, standards.OFDM},
	{171, 5855, 80, standards.Band5GHz, standards.OFDM},
	// 5 GHz 160 MHz channels
	{50, 5250, 160, standards.Band5GHz, standards.OFDM},
	{114, 5570, 160, standards.Band5GHz, standards.OFDM},
	{163, 5815, 160, standards.Band5GHz, standards.OFDM},

	// 802.11p 10 MHz channels in the 5.855-5.925 GHz band
	{172, 5860, 10, standards.Band5GHz, standards.Ch80211p},
	{174, 5870, 10, standards.Band5GHz, standards.Ch80211p},
	{176, 5880, 10, standards.Band5GHz, standards.Ch80211p},
	{178, 5890, 10, standards.Band5GHz, standards.Ch80211p},
	{180, 5900, 10, standards.Band5GHz, standards.Ch80211p},
	{182, 5910, 10, standards.Band5GHz, standards.Ch80211p},
	{184, 5920, 10, standards.Band5GHz, standards.Ch80211p},
	// 802.11p 5 MHz channels share the center frequencies of the 10 MHz channels
	{171, 5860, 5, standards.Band5GHz, standards.Ch80211p},
	{173, 5870, 5, standards.Band5GHz, standards.Ch80211p},
	{175, 5880, 5, standards.Band5GHz, standards.Ch80211p},
	{177, 5890, 5, standards.Band5GHz, standards.Ch80211p},
	{179, 5900, 5, standards.Band5GHz, standards.Ch80211p},
	{181, 5910, 5, standards.Band5GHz, standards.Ch80211p},
	{183, 5920, 5, standards.Band5GHz, standards.Ch80211p},

	// 6 GHz 20 MHz channels
	{1, 5955, 20, standards.Band6GHz, standards.OFDM},
	{5, 5975, 20, standards.Band6GHz, standards.OFDM},
	{9, 5995, 20, standards.Band6GHz, standards.OFDM},
	{13, 6015, 20, standards.Band6GHz, standards.OFDM},
	{17, 6035, 20, standards.Band6GHz, standards.OFDM},
	{21, 6055, 20, standards.Band6GHz, standards.OFDM},
	{25, 6075, 20, standards.Band6GHz, standards.OFDM},
	{29, 6095, 20, standards.Band6GHz, standards.OFDM},
	{33, 6115, 20, standards.Band6GHz, standards.OFDM},
	{37, 6135, 20, standards.Band6GHz, standards.OFDM},
	{41, 6155, 20, standards.Band6GHz, standards.OFDM},
	{45, 6175, 20, standards.Band6GHz, standards.OFDM},
	{49, 6195, 20, standards.Band6GHz, standards.OFDM},
	{53, 6215, 20, standards.Band6GHz, standards.OFDM},
	{57, 6235, 20, standards.Band6GHz, standards.OFDM},
	{61, 6255, 20, standards.Band6GHz, standards.OFDM},
	{65, 6275, 20, standards.Band6GHz, standards.OFDM},
	{69, 6295, 20, standards.Band6GHz, standards.OFDM},
	{73, 6315, 20, standards.Band6GHz, standards.OFDM},
	{77, 6335, 20, standards.Band6GHz, standards.OFDM},
	{81, 6355, 20, standards.Band6GHz, standards.OFDM},
	{85, 6375, 20, standards.Band6GHz, standards.OFDM},
	{89, 6395, 20, standards.Band6GHz, standards.OFDM},
	{93, 6415, 20, standards.Band6GHz, standards.OFDM},
	{97, 6435, 20, standards.Band6GHz, standards.OFDM},
	{101, 6455, 20, standards.Band6GHz, standards.OFDM},
	{105, 6475, 20, standards.Band6GHz, standards.OFDM},
	{109, 6495, 20, standards.Band6GHz, standards.OFDM},
	{113, 6515, 20, standards.Band6GHz, standards.OFDM},
	{117, 6535, 20, standards.Band6GHz, standards.OFDM},
	{121, 6555, 20, standards.Band6GHz, standards.OFDM},
	{125, 6575, 20, standards.Band6GHz, standards.OFDM},
	{129, 6595, 20, standards.Band6GHz, standards.OFDM},
	{133, 6615, 20, standards.Band6GHz, standards.OFDM},
	{137, 6635, 20, standards.Band6GHz, standards.OFDM},
	{141, 6655, 20, standards.Band6GHz, standards.OFDM},
	{145, 6675, 20, standards.Band6GHz, standards.OFDM},
	{149, 6695, 20, standards.Band6GHz, standards.OFDM},
	{153, 6715, 20, standards.Band6GHz, standards.OFDM},
	{157, 6735, 20, standards.Band6GHz, standards.OFDM},
	{161, 6755, 20, standards.Band6GHz, standards.OFDM},
	{165, 6775, 20, standards.Band6GHz, standards.OFDM},
	{169, 6795, 20, standards.Band6GHz, standards.OFDM},
	{173, 6815, 20, standards.Band6GHz, standards.OFDM},
	{177, 6835, 20, standards.Band6GHz, standards.OFDM},
	{181, 6855, 20, standards.Band6GHz, standards.OFDM},
	{185, 6875, 20, standards.Band6GHz, standards.OFDM},
	{189, 6895, 20, standards.Band6GHz, standards.OFDM},
	{193, 6915, 20, standards.Band6GHz, standards.OFDM},
	{197, 6935, 20, standards.Band6GHz, standards.OFDM},
	{201, 6955, 20, standards.Band6GHz, standards.OFDM},
	{205, 6975, 20, standards.Band6GHz, standards.OFDM},
	{209, 6995, 20, standards.Band6GHz, standards.OFDM},
	{213, 7015, 20, standards.Band6GHz, standards.OFDM},
	{217, 7035, 20, standards.Band6GHz, standards.OFDM},
	{221, 7055, 20, standards.Band6GHz, standards.OFDM},
	{225, 7075, 20, standards.Band6GHz, standards.OFDM},
	{229, 7095, 20, standards.Band6GHz, standards.OFDM},
	{233, 7115, 20, standards.Band6GHz, standards.OFDM},
	// 6 GHz 40 MHz channels
	{3, 5965, 40, standards.Band6GHz, standards.OFDM},
	{11, 6005, 40, standards.Band6GHz, standards.OFDM},
	{19, 6045, 40, standards.Band6GHz, standards.OFDM},
	{27, 6085, 40, standards.Band6GHz, standards.OFDM},
	{35, 6125, 40, standards.Band6GHz, standards.OFDM},
	{43, 6165, 40, standards.Band6GHz, standards.OFDM},
	{51, 6205, 40, standards.Band6GHz, standards.OFDM},
	{59, 6245, 40, standards.Band6GHz, standards.OFDM},
	{67, 6285, 40, standards.Band6GHz, standards.OFDM},
	{75, 6325, 40, standards.Band6GHz, standards.OFDM},
	{83, 6365, 40, standards.Band6GHz, standards.OFDM},
	{91, 6405, 40, standards.Band6GHz, standards.OFDM},
	{99, 6445, 40, standards.Band6GHz, standards.OFDM},
	{107, 6485, 40, standards.Band6GHz, standards.OFDM},
	{115, 6525, 40, standards.Band6GHz, standards.OFDM},
	{123, 6565, 40, standards.Band6GHz, standards.OFDM},
	{131, 6605, 40, standards.Band6GHz, standards.OFDM},
	{139, 6645, 40, standards.Band6GHz, standards.OFDM},
	{147, 6685, 40, standards.Band6GHz, standards.OFDM},
	{155, 6725, 40, standards.Band6GHz, standards.OFDM},
	{163, 6765, 40, standards.Band6GHz, standards.OFDM},
	{171, 6805, 40, standards.Band6GHz, standards.OFDM},
	{179, 6845, 40, standards.Band6GHz, standards.OFDM},
	{187, 6885, 40, standards.Band6GHz, standards.OFDM},
	{195, 6925, 40, standards.Band6GHz, standards.OFDM},
	{203, 6965, 40, standards.Band6GHz, standards.OFDM},
	{211, 7005, 40, standards.Band6GHz, standards.OFDM},
	{219, 7045, 40, standards.Band6GHz, standards.OFDM},
	{227, 7085, 40, standards.Band6GHz, standards.OFDM},
	// 6 GHz 80 MHz channels
	{7, 5985, 80, standards.Band6GHz, standards.OFDM},
	{23, 6065, 80, standards.Band6GHz, standards.OFDM},
	{39, 6145, 80, standards.Band6GHz, standards.OFDM},
	{55, 6225, 80, standards.Band6GHz, standards.OFDM},
	{71, 6305, 80, standards.Band6GHz, standards.OFDM},
	{87, 6385, 80, standards.Band6GHz, standards.OFDM},
	{103, 6465, 80, standards.Band6GHz, standards.OFDM},
	{119, 6545, 80, standards.Band6GHz, standards.OFDM},
	{135, 6625, 80, standards.Band6GHz, standards.OFDM},
	{151, 6705, 80, standards.Band6GHz, standards.OFDM},
	{167, 6785, 80, standards.Band6GHz, standards.OFDM},
	{183, 6865, 80, standards.Band6GHz, standards.OFDM},
	{199, 6945, 80, standards.Band6GHz, standards.OFDM},
	{215, 7025, 80, standards.Band6GHz, standards.OFDM},
	// 6 GHz 160 MHz channels
	{15, 6025, 160, standards.Band6GHz, standards.OFDM},
	{47, 6185, 160, standards.Band6GHz, standards.OFDM},
	{79, 6345, 160, standards.Band6GHz, standards.OFDM},
	{111, 6505, 160, standards.Band6GHz, standards.OFDM},
	{143, 6665, 160, standards.Band6GHz, standards.OFDM},
	{175, 6825, 160, standards.Band6GHz, standards.OFDM},
	{207, 6985, 160, standards.Band6GHz, standards.OFDM},
}
