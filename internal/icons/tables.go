// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package icons

// YahooConditions covers Yahoo Weather condition codes 0-47. Code 3200
// ("not available") is outside the table.
var YahooConditions = &Table{
	name: "yahoo",
	day: []Icon{
		Wind,              // 0 tornado
		Wind,              // 1 tropical storm
		Wind,              // 2 hurricane
		Thunder,           // 3 severe thunderstorms
		Thunder,           // 4 thunderstorms
		RainSnow,          // 5 mixed rain and snow
		RainSleet,         // 6 mixed rain and sleet
		SnowSleet,         // 7 mixed snow and sleet
		RainSleet,         // 8 freezing drizzle
		Drizzle,           // 9 drizzle
		RainSleet,         // 10 freezing rain
		Rain,              // 11 showers
		Rain,              // 12 showers
		Snow,              // 13 snow flurries
		Snow,              // 14 light snow showers
		HeavySnow,         // 15 blowing snow
		Snow,              // 16 snow
		Sleet,             // 17 hail
		Sleet,             // 18 sleet
		Fog,               // 19 dust
		Fog,               // 20 foggy
		Fog,               // 21 haze
		Fog,               // 22 smoky
		Wind,              // 23 blustery
		Wind,              // 24 windy
		Cold,              // 25 cold
		Cloudy,            // 26 cloudy
		Cloudy,            // 27 mostly cloudy (night)
		MostlyCloudyDay,   // 28 mostly cloudy (day)
		PartlyCloudyNight, // 29 partly cloudy (night)
		PartlyCloudyDay,   // 30 partly cloudy (day)
		ClearNight,        // 31 clear (night)
		ClearDay,          // 32 sunny
		FairNight,         // 33 fair (night)
		FairDay,           // 34 fair (day)
		RainSleet,         // 35 mixed rain and hail
		Hot,               // 36 hot
		ThunderSun,        // 37 isolated thunderstorms
		Thunder,           // 38 scattered thunderstorms
		Thunder,           // 39 scattered thunderstorms
		RainSun,           // 40 scattered showers
		HeavySnow,         // 41 heavy snow
		Snow,              // 42 scattered snow showers
		HeavySnow,         // 43 heavy snow
		PartlyCloudyDay,   // 44 partly cloudy
		Rain,              // 45 thundershowers
		Snow,              // 46 snow showers
		ThunderSun,        // 47 isolated thundershowers
	},
	night: []Icon{
		Wind,              // 0 tornado
		Wind,              // 1 tropical storm
		Wind,              // 2 hurricane
		Thunder,           // 3 severe thunderstorms
		Thunder,           // 4 thunderstorms
		RainSnow,          // 5 mixed rain and snow
		RainSleet,         // 6 mixed rain and sleet
		SnowSleet,         // 7 mixed snow and sleet
		RainSleet,         // 8 freezing drizzle
		Drizzle,           // 9 drizzle
		RainSleet,         // 10 freezing rain
		Rain,              // 11 showers
		Rain,              // 12 showers
		Snow,              // 13 snow flurries
		Snow,              // 14 light snow showers
		HeavySnow,         // 15 blowing snow
		Snow,              // 16 snow
		Sleet,             // 17 hail
		Sleet,             // 18 sleet
		Fog,               // 19 dust
		Fog,               // 20 foggy
		Fog,               // 21 haze
		Fog,               // 22 smoky
		Wind,              // 23 blustery
		Wind,              // 24 windy
		Cold,              // 25 cold
		Cloudy,            // 26 cloudy
		Cloudy,            // 27 mostly cloudy (night)
		MostlyCloudyDay,   // 28 mostly cloudy (day)
		PartlyCloudyNight, // 29 partly cloudy (night)
		PartlyCloudyDay,   // 30 partly cloudy (day)
		ClearNight,        // 31 clear (night)
		ClearDay,          // 32 sunny
		FairNight,         // 33 fair (night)
		FairDay,           // 34 fair (day)
		RainSleet,         // 35 mixed rain and hail
		Hot,               // 36 hot
		ThunderSun,        // 37 isolated thunderstorms
		Thunder,           // 38 scattered thunderstorms
		Thunder,           // 39 scattered thunderstorms
		Rain,              // 40 scattered showers
		HeavySnow,         // 41 heavy snow
		Snow,              // 42 scattered snow showers
		HeavySnow,         // 43 heavy snow
		PartlyCloudyNight, // 44 partly cloudy
		Rain,              // 45 thundershowers
		Snow,              // 46 snow showers
		Thunder,           // 47 isolated thundershowers
	},
}

// UndergroundForecast covers Weather Underground hourly forecast codes
// 1-24. Index 0 is not defined by the provider and 17 is omitted.
var UndergroundForecast = &Table{
	name: "underground-forecast",
	day: []Icon{
		NotAvailable,    // 0 undefined
		ClearDay,        // 1 clear
		FairDay,         // 2 partly cloudy
		PartlyCloudyDay, // 3 mostly cloudy
		Cloudy,          // 4 cloudy
		Fog,             // 5 hazy
		Fog,             // 6 foggy
		Hot,             // 7 very hot
		Cold,            // 8 very cold
		Snow,            // 9 blowing snow
		RainSun,         // 10 chance of showers
		Rain,            // 11 showers
		RainSun,         // 12 chance of rain
		Rain,            // 13 rain
		ThunderSun,      // 14 chance of a thunderstorm
		Thunder,         // 15 thunderstorm
		Sleet,           // 16 flurries
		NotAvailable,    // 17 omitted
		SnowSleet,       // 18 chance of snow showers
		SnowSleet,       // 19 snow showers
		Snow,            // 20 chance of snow
		Snow,            // 21 snow
		SnowSleet,       // 22 chance of ice pellets
		SnowSleet,       // 23 ice pellets
		Snow,            // 24 blizzard
	},
	night: []Icon{
		NotAvailable,      // 0 undefined
		ClearNight,        // 1 clear
		FairNight,         // 2 partly cloudy
		PartlyCloudyNight, // 3 mostly cloudy
		Cloudy,            // 4 cloudy
		Fog,               // 5 hazy
		Fog,               // 6 foggy
		Hot,               // 7 very hot
		Cold,              // 8 very cold
		Snow,              // 9 blowing snow
		Drizzle,           // 10 chance of showers
		Rain,              // 11 showers
		Rain,              // 12 chance of rain
		Rain,              // 13 rain
		Thunder,           // 14 chance of a thunderstorm
		Thunder,           // 15 thunderstorm
		Sleet,             // 16 flurries
		NotAvailable,      // 17 omitted
		SnowSleet,         // 18 chance of snow showers
		SnowSleet,         // 19 snow showers
		Snow,              // 20 chance of snow
		Snow,              // 21 snow
		SnowSleet,         // 22 chance of ice pellets
		SnowSleet,         // 23 ice pellets
		Snow,              // 24 blizzard
	},
}

// UndergroundConditions covers Weather Underground current condition
// phrases 0-52. The last two ("unknown precipitation", "unknown") have no icon.
var UndergroundConditions = &Table{
	name: "underground",
	day: []Icon{
		Drizzle,      // 0 drizzle
		Rain,         // 1 rain
		Snow,         // 2 snow
		Snow,         // 3 snow grains
		Sleet,        // 4 ice crystals
		Sleet,        // 5 ice pellets
		Sleet,        // 6 hail
		Drizzle,      // 7 mist
		Fog,          // 8 fog
		Fog,          // 9 fog patches
		Fog,          // 10 smoke
		Fog,          // 11 volcanic ash
		Fog,          // 12 widespread dust
		Fog,          // 13 sand
		Fog,          // 14 haze
		Drizzle,      // 15 spray
		Fog,          // 16 dust whirls
		Fog,          // 17 sandstorm
		Snow,         // 18 low drifting snow
		Fog,          // 19 low drifting widespread dust
		Fog,          // 20 low drifting sand
		HeavySnow,    // 21 blowing snow
		Fog,          // 22 blowing widespread dust
		Wind,         // 23 blowing sand
		Drizzle,      // 24 rain mist
		Rain,         // 25 rain showers
		Snow,         // 26 snow showers
		Snow,         // 27 snow blowing snow mist
		Sleet,        // 28 ice pellet showers
		RainSleet,    // 29 hail showers
		RainSleet,    // 30 small hail showers
		Thunder,      // 31 thunderstorm
		Thunder,      // 32 thunderstorms and rain
		Thunder,      // 33 thunderstorms and snow
		Thunder,      // 34 thunderstorms and ice pellets
		Thunder,      // 35 thunderstorms with hail
		Thunder,      // 36 thunderstorms with small hail
		Drizzle,      // 37 freezing drizzle
		Sleet,        // 38 freezing rain
		Sleet,        // 39 freezing fog
		Fog,          // 40 patches of fog
		Fog,          // 41 shallow fog
		Fog,          // 42 partial fog
		Cloudy,       // 43 overcast
		ClearDay,     // 44 clear
		FairDay,      // 45 partly cloudy
		Cloudy,       // 46 mostly cloudy
		FairDay,      // 47 scattered clouds
		RainSleet,    // 48 small hail
		Thunder,      // 49 squalls
		Wind,         // 50 funnel cloud
		NotAvailable, // 51 unknown precipitation
		NotAvailable, // 52 unknown
	},
	night: []Icon{
		Drizzle,      // 0 drizzle
		Rain,         // 1 rain
		Snow,         // 2 snow
		Snow,         // 3 snow grains
		Sleet,        // 4 ice crystals
		Sleet,        // 5 ice pellets
		Sleet,        // 6 hail
		Drizzle,      // 7 mist
		Fog,          // 8 fog
		Fog,          // 9 fog patches
		Fog,          // 10 smoke
		Fog,          // 11 volcanic ash
		Fog,          // 12 widespread dust
		Fog,          // 13 sand
		Fog,          // 14 haze
		Drizzle,      // 15 spray
		Fog,          // 16 dust whirls
		Fog,          // 17 sandstorm
		Snow,         // 18 low drifting snow
		Fog,          // 19 low drifting widespread dust
		Fog,          // 20 low drifting sand
		HeavySnow,    // 21 blowing snow
		Fog,          // 22 blowing widespread dust
		Wind,         // 23 blowing sand
		Drizzle,      // 24 rain mist
		Rain,         // 25 rain showers
		Snow,         // 26 snow showers
		Snow,         // 27 snow blowing snow mist
		Sleet,        // 28 ice pellet showers
		RainSleet,    // 29 hail showers
		RainSleet,    // 30 small hail showers
		Thunder,      // 31 thunderstorm
		Thunder,      // 32 thunderstorms and rain
		Thunder,      // 33 thunderstorms and snow
		Thunder,      // 34 thunderstorms and ice pellets
		Thunder,      // 35 thunderstorms with hail
		Thunder,      // 36 thunderstorms with small hail
		Drizzle,      // 37 freezing drizzle
		Sleet,        // 38 freezing rain
		Sleet,        // 39 freezing fog
		Fog,          // 40 patches of fog
		Fog,          // 41 shallow fog
		Fog,          // 42 partial fog
		Cloudy,       // 43 overcast
		ClearNight,   // 44 clear
		FairNight,    // 45 partly cloudy
		Cloudy,       // 46 mostly cloudy
		FairNight,    // 47 scattered clouds
		RainSleet,    // 48 small hail
		Thunder,      // 49 squalls
		Wind,         // 50 funnel cloud
		NotAvailable, // 51 unknown precipitation
		NotAvailable, // 52 unknown
	},
}

// Tables lists every table by name.
var Tables = map[string]*Table{
	YahooConditions.name:       YahooConditions,
	UndergroundForecast.name:   UndergroundForecast,
	UndergroundConditions.name: UndergroundConditions,
}
