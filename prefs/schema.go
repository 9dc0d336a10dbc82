// Package prefs holds the generated preferences schema, its accessor
// table, and the process-wide default store.
package prefs

// Prefs is the root of the nested preferences tree. Every leaf is a
// scalar addressable both through its field and through the external
// key in Accessors. Renamed JSON tags carry legacy hyphenated keys.
type Prefs struct {
	Browser        Browser        `json:"browser"`
	CSS            CSS            `json:"css"`
	DevTools       DevTools       `json:"devtools"`
	DOM            DOM            `json:"dom"`
	Gfx            Gfx            `json:"gfx"`
	JS             JS             `json:"js"`
	Layout         Layout         `json:"layout"`
	Media          Media          `json:"media"`
	Network        Network        `json:"network"`
	SessionHistory SessionHistory `json:"session_history"`
	Shell          Shell          `json:"shell"`
	WebGL          WebGL          `json:"webgl"`
}

type Browser struct {
	Display Display `json:"display"`
}

type Display struct {
	BackgroundColor int64 `json:"background_color"`
	ForegroundColor int64 `json:"foreground_color"`
}

type CSS struct {
	Animations Animations `json:"animations"`
}

type Animations struct {
	Testing Testing `json:"testing"`
}

type Testing struct {
	Enabled bool `json:"enabled"`
}

type DevTools struct {
	Server Server `json:"server"`
}

type Server struct {
	Enabled bool  `json:"enabled"`
	Port    int64 `json:"port"`
}

type DOM struct {
	WebGPU           WebGPU           `json:"webgpu"`
	Bluetooth        Bluetooth        `json:"bluetooth"`
	CanvasCapture    CanvasCapture    `json:"canvas_capture"`
	CanvasText       CanvasText       `json:"canvas_text"`
	CompositionEvent CompositionEvent `json:"composition_event"`
	CustomElements   CustomElements   `json:"custom_elements"`
	Document         Document         `json:"document"`
	ForceTouch       ForceTouch       `json:"forcetouch"`
	Fullscreen       Fullscreen       `json:"fullscreen"`
	Gamepad          Gamepad          `json:"gamepad"`
	ImageBitmap      ImageBitmap      `json:"imagebitmap"`
	Microdata        Microdata        `json:"microdata"`
	MouseEvent       MouseEvent       `json:"mouse_event"`
	MutationObserver MutationObserver `json:"mutation_observer"`
	OffscreenCanvas  OffscreenCanvas  `json:"offscreen_canvas"`
	Permissions      Permissions      `json:"permissions"`
	Script           Script           `json:"script"`
	ServiceWorker    ServiceWorker    `json:"serviceworker"`
	DebugHelpers     DebugHelpers     `json:"debug_helpers"`
	HTMLParser       HTMLParser       `json:"html_parser"`
	ShadowDOM        ShadowDOM        `json:"shadowdom"`
	Svg              Svg              `json:"svg"`
	TestableCrash    TestableCrash    `json:"testable_crash"`
	TestBinding      TestBinding      `json:"testbinding"`
	Testing          TestingDOM       `json:"testing"`
	TestPerf         TestPerf         `json:"testperf"`
	WebGL2           WebGL2           `json:"webgl2"`
	WebRTC           WebRTC           `json:"webrtc"`
	WebVTT           WebVTT           `json:"webvtt"`
	WebXR            WebXR            `json:"webxr"`
	Worklet          Worklet          `json:"worklet"`
}

type WebGPU struct {
	// Expose the WebGPU API surface to content.
	Enabled bool `json:"enabled"`
}

type Bluetooth struct {
	Enabled bool             `json:"enabled"`
	Testing BluetoothTesting `json:"testing"`
}

type BluetoothTesting struct {
	Enabled bool `json:"enabled"`
}

type CanvasCapture struct {
	Enabled bool `json:"enabled"`
}

type CanvasText struct {
	Enabled bool `json:"enabled"`
}

type CompositionEvent struct {
	Enabled bool `json:"dom.compositionevent.enabled"`
}

type CustomElements struct {
	Enabled bool `json:"dom.customelements.enabled"`
}

type Document struct {
	DblClickTimeout int64 `json:"dblclick_timeout"`
	DblClickDist    int64 `json:"dblclick_dist"`
}

type ForceTouch struct {
	Enabled bool `json:"enabled"`
}

type Fullscreen struct {
	Test bool `json:"test"`
}

type Gamepad struct {
	Enabled bool `json:"enabled"`
}

type ImageBitmap struct {
	Enabled bool `json:"enabled"`
}

type Microdata struct {
	Testing TestingMicrodata `json:"testing"`
}

type TestingMicrodata struct {
	Enabled bool `json:"enabled"`
}

type MouseEvent struct {
	Which Which `json:"which"`
}

type Which struct {
	Enabled bool `json:"dom.mouseevent.which.enabled"`
}

type MutationObserver struct {
	Enabled bool `json:"enabled"`
}

type OffscreenCanvas struct {
	Enabled bool `json:"enabled"`
}

type Permissions struct {
	Enabled bool               `json:"enabled"`
	Testing TestingPermissions `json:"testing"`
}

type TestingPermissions struct {
	AllowedInNonsecureContexts bool `json:"allowed_in_nonsecure_contexts"`
}

type Script struct {
	Asynch bool `json:"asynch"`
}

type ServiceWorker struct {
	Enabled        bool  `json:"enabled"`
	TimeoutSeconds int64 `json:"timeout_seconds"`
}

type DebugHelpers struct {
	Enabled bool `json:"enabled"`
}

type HTMLParser struct {
	AsyncHTMLTokenizer AsyncHTMLTokenizer `json:"async_html_tokenizer"`
}

type AsyncHTMLTokenizer struct {
	Enabled bool `json:"enabled"`
}

type ShadowDOM struct {
	Enabled bool `json:"enabled"`
}

type Svg struct {
	Enabled bool `json:"enabled"`
}

type TestableCrash struct {
	Enabled bool `json:"enabled"`
}

type TestBinding struct {
	Enabled         bool            `json:"enabled"`
	PrefControlled  PrefControlled  `json:"prefcontrolled"`
	PrefControlled2 PrefControlled2 `json:"prefcontrolled2"`
	PreferenceValue PreferenceValue `json:"preference_value"`
}

type PrefControlled struct {
	Enabled bool `json:"enabled"`
}

type PrefControlled2 struct {
	Enabled bool `json:"enabled"`
}

type PreferenceValue struct {
	Falsy           bool   `json:"falsy"`
	QuoteStringTest string `json:"quote_string_test"`
	SpaceStringTest string `json:"space_string_test"`
	StringEmpty     string `json:"string_empty"`
	StringTest      string `json:"string_test"`
	Truthy          bool   `json:"truthy"`
}

type TestingDOM struct {
	Element          Element          `json:"element"`
	HTMLInputElement HTMLInputElement `json:"html_input_element"`
}

type Element struct {
	Activation Activation `json:"activation"`
}

type Activation struct {
	Enabled bool `json:"enabled"`
}

type HTMLInputElement struct {
	SelectFiles SelectFiles `json:"select_files"`
}

type SelectFiles struct {
	Enabled bool `json:"dom.testing.htmlinputelement.select_files.enabled"`
}

type TestPerf struct {
	Enabled bool `json:"enabled"`
}

type WebGL2 struct {
	// Expose the WebGL2 API surface to content.
	Enabled bool `json:"enabled"`
}

type WebRTC struct {
	Transceiver Transceiver `json:"transceiver"`
	Enabled     bool        `json:"enabled"`
}

type Transceiver struct {
	Enabled bool `json:"enabled"`
}

type WebVTT struct {
	Enabled bool `json:"enabled"`
}

type WebXR struct {
	Enabled                 bool     `json:"enabled"`
	Test                    bool     `json:"test"`
	FirstPersonObserverView bool     `json:"first_person_observer_view"`
	GLWindow                GLWindow `json:"glwindow"`
	Hands                   Hands    `json:"hands"`
	Layers                  Layers   `json:"layers"`
	SessionAvailable        bool     `json:"sessionavailable"`
	UnsafeAssumeUserIntent  bool     `json:"dom.webxr.unsafe-assume-user-intent"`
}

type GLWindow struct {
	Enabled   bool `json:"enabled"`
	LeftRight bool `json:"dom.webxr.glwindow.left-right"`
	RedCyan   bool `json:"dom.webxr.glwindow.red-cyan"`
	Spherical bool `json:"spherical"`
	Cubemap   bool `json:"cubemap"`
}

type Hands struct {
	Enabled bool `json:"enabled"`
}

type Layers struct {
	Enabled bool `json:"enabled"`
}

type Worklet struct {
	BlockingSleep BlockingSleep  `json:"blockingsleep"`
	Enabled       bool           `json:"enabled"`
	Testing       TestingWorklet `json:"testing"`
	TimeoutMS     int64          `json:"timeout_ms"`
}

type BlockingSleep struct {
	Enabled bool `json:"enabled"`
}

type TestingWorklet struct {
	Enabled bool `json:"enabled"`
}

type Gfx struct {
	SubpixelTextAntialiasing SubpixelTextAntialiasing `json:"subpixel_text_antialiasing"`
	TextureSwizzling         TextureSwizzling         `json:"texture_swizzling"`
}

type SubpixelTextAntialiasing struct {
	Enabled bool `json:"gfx.subpixel-text-antialiasing.enabled"`
}

type TextureSwizzling struct {
	Enabled bool `json:"gfx.texture-swizzling.enabled"`
}

type JS struct {
	AsmJS                         AsmJS                         `json:"asmjs"`
	AsyncStack                    AsyncStack                    `json:"asyncstack"`
	Baseline                      Baseline                      `json:"baseline"`
	DiscardSystemSource           DiscardSystemSource           `json:"discard_system_source"`
	DumpStackOnDebuggeeWouldRun   DumpStackOnDebuggeeWouldRun   `json:"dump_stack_on_debuggee_would_run"`
	Ion                           Ion                           `json:"ion"`
	Mem                           Mem                           `json:"mem"`
	NativeRegex                   NativeRegex                   `json:"native_regex"`
	OffthreadCompilation          OffthreadCompilation          `json:"offthread_compilation"`
	ParallelParsing               ParallelParsing               `json:"parallel_parsing"`
	SharedMemory                  SharedMemory                  `json:"shared_memory"`
	Strict                        Strict                        `json:"strict"`
	ThrowOnAsmJSValidationFailure ThrowOnAsmJSValidationFailure `json:"throw_on_asmjs_validation_failure"`
	ThrowOnDebuggeeWouldRun       ThrowOnDebuggeeWouldRun       `json:"throw_on_debuggee_would_run"`
	Timers                        Timers                        `json:"timers"`
	Wasm                          Wasm                          `json:"wasm"`
	Werror                        Werror                        `json:"werror"`
}

type AsmJS struct {
	Enabled bool `json:"enabled"`
}

type AsyncStack struct {
	Enabled bool `json:"enabled"`
}

type Baseline struct {
	Enabled                bool                   `json:"enabled"`
	UnsafeEagerCompilation UnsafeEagerCompilation `json:"unsafe_eager_compilation"`
}

type UnsafeEagerCompilation struct {
	Enabled bool `json:"enabled"`
}

type DiscardSystemSource struct {
	Enabled bool `json:"enabled"`
}

type DumpStackOnDebuggeeWouldRun struct {
	Enabled bool `json:"enabled"`
}

type Ion struct {
	Enabled                bool                      `json:"enabled"`
	OffthreadCompilation   OffthreadCompilationIon   `json:"offthread_compilation"`
	UnsafeEagerCompilation UnsafeEagerCompilationIon `json:"unsafe_eager_compilation"`
}

type OffthreadCompilationIon struct {
	Enabled bool `json:"enabled"`
}

type UnsafeEagerCompilationIon struct {
	Enabled bool `json:"enabled"`
}

type Mem struct {
	GC  GC    `json:"gc"`
	Max int64 `json:"max"`
}

type GC struct {
	AllocationThresholdMB                   int64             `json:"allocation_threshold_mb"`
	AllocationThresholdFactor               int64             `json:"allocation_threshold_factor"`
	AllocationThresholdAvoidInterruptFactor int64             `json:"allocation_threshold_avoid_interrupt_factor"`
	Compacting                              Compacting        `json:"compacting"`
	DecommitThresholdMB                     int64             `json:"decommit_threshold_mb"`
	DynamicHeapGrowth                       DynamicHeapGrowth `json:"dynamic_heap_growth"`
	DynamicMarkSlice                        DynamicMarkSlice  `json:"dynamic_mark_slice"`
	EmptyChunkCountMax                      int64             `json:"empty_chunk_count_max"`
	EmptyChunkCountMin                      int64             `json:"empty_chunk_count_min"`
	HighFrequencyHeapGrowthMax              int64             `json:"high_frequency_heap_growth_max"`
	HighFrequencyHeapGrowthMin              int64             `json:"high_frequency_heap_growth_min"`
	HighFrequencyHighLimitMB                int64             `json:"high_frequency_high_limit_mb"`
	HighFrequencyLowLimitMB                 int64             `json:"high_frequency_low_limit_mb"`
	HighFrequencyTimeLimitMS                int64             `json:"high_frequency_time_limit_ms"`
	Incremental                             Incremental       `json:"incremental"`
	LowFrequencyHeapGrowth                  int64             `json:"low_frequency_heap_growth"`
	PerZone                                 PerZone           `json:"per_zone"`
	Zeal                                    Zeal              `json:"zeal"`
}

type Compacting struct {
	Enabled bool `json:"enabled"`
}

type DynamicHeapGrowth struct {
	Enabled bool `json:"enabled"`
}

type DynamicMarkSlice struct {
	Enabled bool `json:"enabled"`
}

type Incremental struct {
	Enabled bool  `json:"enabled"`
	SliceMS int64 `json:"slice_ms"`
}

type PerZone struct {
	Enabled bool `json:"enabled"`
}

type Zeal struct {
	Frequency int64 `json:"frequency"`
	Level     int64 `json:"level"`
}

type NativeRegex struct {
	Enabled bool `json:"enabled"`
}

type OffthreadCompilation struct {
	Enabled bool `json:"enabled"`
}

type ParallelParsing struct {
	Enabled bool `json:"enabled"`
}

type SharedMemory struct {
	Enabled bool `json:"enabled"`
}

type Strict struct {
	Debug   Debug `json:"debug"`
	Enabled bool  `json:"enabled"`
}

type Debug struct {
	Enabled bool `json:"enabled"`
}

type ThrowOnAsmJSValidationFailure struct {
	Enabled bool `json:"enabled"`
}

type ThrowOnDebuggeeWouldRun struct {
	Enabled bool `json:"enabled"`
}

type Timers struct {
	MinimumDuration int64 `json:"minimum_duration"`
}

type Wasm struct {
	Baseline BaselineWasm `json:"baseline"`
	Enabled  bool         `json:"enabled"`
	Ion      IonWasm      `json:"ion"`
}

type BaselineWasm struct {
	Enabled bool `json:"enabled"`
}

type IonWasm struct {
	Enabled bool `json:"enabled"`
}

type Werror struct {
	Enabled bool `json:"enabled"`
}

type Layout struct {
	Animations   AnimationsLayout `json:"animations"`
	Columns      Columns          `json:"columns"`
	Flexbox      Flexbox          `json:"flexbox"`
	LegacyLayout bool             `json:"legacy_layout"`
	Threads      int64            `json:"threads"`
	WritingMode  WritingMode      `json:"writing_mode"`
}

type AnimationsLayout struct {
	Test Test `json:"test"`
}

type Test struct {
	Enabled bool `json:"enabled"`
}

type Columns struct {
	Enabled bool `json:"enabled"`
}

type Flexbox struct {
	Enabled bool `json:"enabled"`
}

type WritingMode struct {
	Enabled bool `json:"layout.writing-mode.enabled"`
}

type Media struct {
	GLVideo GLVideo      `json:"glvideo"`
	Testing TestingMedia `json:"testing"`
}

type GLVideo struct {
	Enabled bool `json:"enabled"`
}

type TestingMedia struct {
	Enabled bool `json:"enabled"`
}

type Network struct {
	EnforceTLS EnforceTLS `json:"enforce_tls"`
	HTTPCache  HTTPCache  `json:"http_cache"`
	MIME       MIME       `json:"mime"`
}

type EnforceTLS struct {
	Enabled   bool `json:"enabled"`
	Localhost bool `json:"localhost"`
	Onion     bool `json:"onion"`
}

type HTTPCache struct {
	Disabled bool `json:"network.http-cache.disabled"`
}

type MIME struct {
	Sniff bool `json:"sniff"`
}

type SessionHistory struct {
	MaxLength int64 `json:"session-history.max-length"`
}

type Shell struct {
	BackgroundColor   BackgroundColor `json:"background_color"`
	CrashReporter     CrashReporter   `json:"crash_reporter"`
	Homepage          string          `json:"homepage"`
	KeepScreenOn      KeepScreenOn    `json:"keep_screen_on"`
	NativeOrientation string          `json:"shell.native-orientation"`
	NativeTitlebar    NativeTitlebar  `json:"native_titlebar"`
	// Search engine page URL. A %s placeholder, if present, receives the query.
	SearchPage string `json:"searchpage"`
}

type BackgroundColor struct {
	// Viewport clear color as RGBA components in the 0..1 range.
	RGBA [4]float64 `json:"shell.background-color.rgba"`
}

type CrashReporter struct {
	Enabled bool `json:"enabled"`
}

type KeepScreenOn struct {
	Enabled bool `json:"enabled"`
}

type NativeTitlebar struct {
	// Draw the platform titlebar and window decorations.
	Enabled bool `json:"shell.native-titlebar.enabled"`
}

type WebGL struct {
	Testing TestingWebGL `json:"testing"`
}

type TestingWebGL struct {
	ContextCreationError bool `json:"context_creation_error"`
}
