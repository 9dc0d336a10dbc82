package prefs

import "github.com/CreativeUnicorns/prefstore"

// Accessors maps every external preference key to its typed getter and
// setter. Keys follow the structural path except where a legacy rename
// applies. A duplicate key here is a build error, not a runtime one.
var Accessors = prefstore.Table[Prefs]{
	"browser.display.background_color": prefstore.IntField(
		func(p *Prefs) *int64 { return &p.Browser.Display.BackgroundColor },
	),
	"browser.display.foreground_color": prefstore.IntField(
		func(p *Prefs) *int64 { return &p.Browser.Display.ForegroundColor },
	),
	"css.animations.testing.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.CSS.Animations.Testing.Enabled },
	),
	"devtools.server.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DevTools.Server.Enabled },
	),
	"devtools.server.port": prefstore.IntField(
		func(p *Prefs) *int64 { return &p.DevTools.Server.Port },
	),
	"dom.webgpu.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.WebGPU.Enabled },
	),
	"dom.bluetooth.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.Bluetooth.Enabled },
	),
	"dom.bluetooth.testing.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.Bluetooth.Testing.Enabled },
	),
	"dom.canvas_capture.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.CanvasCapture.Enabled },
	),
	"dom.canvas_text.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.CanvasText.Enabled },
	),
	"dom.compositionevent.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.CompositionEvent.Enabled },
	),
	"dom.customelements.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.CustomElements.Enabled },
	),
	"dom.document.dblclick_timeout": prefstore.IntField(
		func(p *Prefs) *int64 { return &p.DOM.Document.DblClickTimeout },
	),
	"dom.document.dblclick_dist": prefstore.IntField(
		func(p *Prefs) *int64 { return &p.DOM.Document.DblClickDist },
	),
	"dom.forcetouch.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.ForceTouch.Enabled },
	),
	"dom.fullscreen.test": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.Fullscreen.Test },
	),
	"dom.gamepad.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.Gamepad.Enabled },
	),
	"dom.imagebitmap.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.ImageBitmap.Enabled },
	),
	"dom.microdata.testing.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.Microdata.Testing.Enabled },
	),
	"dom.mouseevent.which.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.MouseEvent.Which.Enabled },
	),
	"dom.mutation_observer.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.MutationObserver.Enabled },
	),
	"dom.offscreen_canvas.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.OffscreenCanvas.Enabled },
	),
	"dom.permissions.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.Permissions.Enabled },
	),
	"dom.permissions.testing.allowed_in_nonsecure_contexts": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.Permissions.Testing.AllowedInNonsecureContexts },
	),
	"dom.script.asynch": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.Script.Asynch },
	),
	"dom.serviceworker.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.ServiceWorker.Enabled },
	),
	"dom.serviceworker.timeout_seconds": prefstore.IntField(
		func(p *Prefs) *int64 { return &p.DOM.ServiceWorker.TimeoutSeconds },
	),
	"dom.debug_helpers.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.DebugHelpers.Enabled },
	),
	"dom.html_parser.async_html_tokenizer.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.HTMLParser.AsyncHTMLTokenizer.Enabled },
	),
	"dom.shadowdom.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.ShadowDOM.Enabled },
	),
	"dom.svg.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.Svg.Enabled },
	),
	"dom.testable_crash.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.TestableCrash.Enabled },
	),
	"dom.testbinding.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.TestBinding.Enabled },
	),
	"dom.testbinding.prefcontrolled.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.TestBinding.PrefControlled.Enabled },
	),
	"dom.testbinding.prefcontrolled2.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.TestBinding.PrefControlled2.Enabled },
	),
	"dom.testbinding.preference_value.falsy": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.TestBinding.PreferenceValue.Falsy },
	),
	"dom.testbinding.preference_value.quote_string_test": prefstore.StringField(
		func(p *Prefs) *string { return &p.DOM.TestBinding.PreferenceValue.QuoteStringTest },
	),
	"dom.testbinding.preference_value.space_string_test": prefstore.StringField(
		func(p *Prefs) *string { return &p.DOM.TestBinding.PreferenceValue.SpaceStringTest },
	),
	"dom.testbinding.preference_value.string_empty": prefstore.StringField(
		func(p *Prefs) *string { return &p.DOM.TestBinding.PreferenceValue.StringEmpty },
	),
	"dom.testbinding.preference_value.string_test": prefstore.StringField(
		func(p *Prefs) *string { return &p.DOM.TestBinding.PreferenceValue.StringTest },
	),
	"dom.testbinding.preference_value.truthy": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.TestBinding.PreferenceValue.Truthy },
	),
	"dom.testing.element.activation.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.Testing.Element.Activation.Enabled },
	),
	"dom.testing.htmlinputelement.select_files.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.Testing.HTMLInputElement.SelectFiles.Enabled },
	),
	"dom.testperf.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.TestPerf.Enabled },
	),
	"dom.webgl2.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.WebGL2.Enabled },
	),
	"dom.webrtc.transceiver.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.WebRTC.Transceiver.Enabled },
	),
	"dom.webrtc.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.WebRTC.Enabled },
	),
	"dom.webvtt.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.WebVTT.Enabled },
	),
	"dom.webxr.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.WebXR.Enabled },
	),
	"dom.webxr.test": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.WebXR.Test },
	),
	"dom.webxr.first_person_observer_view": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.WebXR.FirstPersonObserverView },
	),
	"dom.webxr.glwindow.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.WebXR.GLWindow.Enabled },
	),
	"dom.webxr.glwindow.left-right": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.WebXR.GLWindow.LeftRight },
	),
	"dom.webxr.glwindow.red-cyan": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.WebXR.GLWindow.RedCyan },
	),
	"dom.webxr.glwindow.spherical": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.WebXR.GLWindow.Spherical },
	),
	"dom.webxr.glwindow.cubemap": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.WebXR.GLWindow.Cubemap },
	),
	"dom.webxr.hands.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.WebXR.Hands.Enabled },
	),
	"dom.webxr.layers.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.WebXR.Layers.Enabled },
	),
	"dom.webxr.sessionavailable": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.WebXR.SessionAvailable },
	),
	"dom.webxr.unsafe-assume-user-intent": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.WebXR.UnsafeAssumeUserIntent },
	),
	"dom.worklet.blockingsleep.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.Worklet.BlockingSleep.Enabled },
	),
	"dom.worklet.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.Worklet.Enabled },
	),
	"dom.worklet.testing.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.DOM.Worklet.Testing.Enabled },
	),
	"dom.worklet.timeout_ms": prefstore.IntField(
		func(p *Prefs) *int64 { return &p.DOM.Worklet.TimeoutMS },
	),
	"gfx.subpixel-text-antialiasing.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.Gfx.SubpixelTextAntialiasing.Enabled },
	),
	"gfx.texture-swizzling.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.Gfx.TextureSwizzling.Enabled },
	),
	"js.asmjs.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.JS.AsmJS.Enabled },
	),
	"js.asyncstack.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.JS.AsyncStack.Enabled },
	),
	"js.baseline.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.JS.Baseline.Enabled },
	),
	"js.baseline.unsafe_eager_compilation.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.JS.Baseline.UnsafeEagerCompilation.Enabled },
	),
	"js.discard_system_source.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.JS.DiscardSystemSource.Enabled },
	),
	"js.dump_stack_on_debuggee_would_run.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.JS.DumpStackOnDebuggeeWouldRun.Enabled },
	),
	"js.ion.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.JS.Ion.Enabled },
	),
	"js.ion.offthread_compilation.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.JS.Ion.OffthreadCompilation.Enabled },
	),
	"js.ion.unsafe_eager_compilation.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.JS.Ion.UnsafeEagerCompilation.Enabled },
	),
	"js.mem.gc.allocation_threshold_mb": prefstore.IntField(
		func(p *Prefs) *int64 { return &p.JS.Mem.GC.AllocationThresholdMB },
	),
	"js.mem.gc.allocation_threshold_factor": prefstore.IntField(
		func(p *Prefs) *int64 { return &p.JS.Mem.GC.AllocationThresholdFactor },
	),
	"js.mem.gc.allocation_threshold_avoid_interrupt_factor": prefstore.IntField(
		func(p *Prefs) *int64 { return &p.JS.Mem.GC.AllocationThresholdAvoidInterruptFactor },
	),
	"js.mem.gc.compacting.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.JS.Mem.GC.Compacting.Enabled },
	),
	"js.mem.gc.decommit_threshold_mb": prefstore.IntField(
		func(p *Prefs) *int64 { return &p.JS.Mem.GC.DecommitThresholdMB },
	),
	"js.mem.gc.dynamic_heap_growth.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.JS.Mem.GC.DynamicHeapGrowth.Enabled },
	),
	"js.mem.gc.dynamic_mark_slice.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.JS.Mem.GC.DynamicMarkSlice.Enabled },
	),
	"js.mem.gc.empty_chunk_count_max": prefstore.IntField(
		func(p *Prefs) *int64 { return &p.JS.Mem.GC.EmptyChunkCountMax },
	),
	"js.mem.gc.empty_chunk_count_min": prefstore.IntField(
		func(p *Prefs) *int64 { return &p.JS.Mem.GC.EmptyChunkCountMin },
	),
	"js.mem.gc.high_frequency_heap_growth_max": prefstore.IntField(
		func(p *Prefs) *int64 { return &p.JS.Mem.GC.HighFrequencyHeapGrowthMax },
	),
	"js.mem.gc.high_frequency_heap_growth_min": prefstore.IntField(
		func(p *Prefs) *int64 { return &p.JS.Mem.GC.HighFrequencyHeapGrowthMin },
	),
	"js.mem.gc.high_frequency_high_limit_mb": prefstore.IntField(
		func(p *Prefs) *int64 { return &p.JS.Mem.GC.HighFrequencyHighLimitMB },
	),
	"js.mem.gc.high_frequency_low_limit_mb": prefstore.IntField(
		func(p *Prefs) *int64 { return &p.JS.Mem.GC.HighFrequencyLowLimitMB },
	),
	"js.mem.gc.high_frequency_time_limit_ms": prefstore.IntField(
		func(p *Prefs) *int64 { return &p.JS.Mem.GC.HighFrequencyTimeLimitMS },
	),
	"js.mem.gc.incremental.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.JS.Mem.GC.Incremental.Enabled },
	),
	"js.mem.gc.incremental.slice_ms": prefstore.IntField(
		func(p *Prefs) *int64 { return &p.JS.Mem.GC.Incremental.SliceMS },
	),
	"js.mem.gc.low_frequency_heap_growth": prefstore.IntField(
		func(p *Prefs) *int64 { return &p.JS.Mem.GC.LowFrequencyHeapGrowth },
	),
	"js.mem.gc.per_zone.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.JS.Mem.GC.PerZone.Enabled },
	),
	"js.mem.gc.zeal.frequency": prefstore.IntField(
		func(p *Prefs) *int64 { return &p.JS.Mem.GC.Zeal.Frequency },
	),
	"js.mem.gc.zeal.level": prefstore.IntField(
		func(p *Prefs) *int64 { return &p.JS.Mem.GC.Zeal.Level },
	),
	"js.mem.max": prefstore.IntField(
		func(p *Prefs) *int64 { return &p.JS.Mem.Max },
	),
	"js.native_regex.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.JS.NativeRegex.Enabled },
	),
	"js.offthread_compilation.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.JS.OffthreadCompilation.Enabled },
	),
	"js.parallel_parsing.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.JS.ParallelParsing.Enabled },
	),
	"js.shared_memory.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.JS.SharedMemory.Enabled },
	),
	"js.strict.debug.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.JS.Strict.Debug.Enabled },
	),
	"js.strict.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.JS.Strict.Enabled },
	),
	"js.throw_on_asmjs_validation_failure.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.JS.ThrowOnAsmJSValidationFailure.Enabled },
	),
	"js.throw_on_debuggee_would_run.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.JS.ThrowOnDebuggeeWouldRun.Enabled },
	),
	"js.timers.minimum_duration": prefstore.IntField(
		func(p *Prefs) *int64 { return &p.JS.Timers.MinimumDuration },
	),
	"js.wasm.baseline.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.JS.Wasm.Baseline.Enabled },
	),
	"js.wasm.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.JS.Wasm.Enabled },
	),
	"js.wasm.ion.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.JS.Wasm.Ion.Enabled },
	),
	"js.werror.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.JS.Werror.Enabled },
	),
	"layout.animations.test.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.Layout.Animations.Test.Enabled },
	),
	"layout.columns.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.Layout.Columns.Enabled },
	),
	"layout.flexbox.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.Layout.Flexbox.Enabled },
	),
	"layout.legacy_layout": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.Layout.LegacyLayout },
	),
	"layout.threads": prefstore.IntField(
		func(p *Prefs) *int64 { return &p.Layout.Threads },
	),
	"layout.writing-mode.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.Layout.WritingMode.Enabled },
	),
	"media.glvideo.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.Media.GLVideo.Enabled },
	),
	"media.testing.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.Media.Testing.Enabled },
	),
	"network.enforce_tls.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.Network.EnforceTLS.Enabled },
	),
	"network.enforce_tls.localhost": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.Network.EnforceTLS.Localhost },
	),
	"network.enforce_tls.onion": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.Network.EnforceTLS.Onion },
	),
	"network.http-cache.disabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.Network.HTTPCache.Disabled },
	),
	"network.mime.sniff": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.Network.MIME.Sniff },
	),
	"session-history.max-length": prefstore.IntField(
		func(p *Prefs) *int64 { return &p.SessionHistory.MaxLength },
	),
	"shell.background-color.rgba": prefstore.Float4Field(
		func(p *Prefs) *[4]float64 { return &p.Shell.BackgroundColor.RGBA },
	),
	"shell.crash_reporter.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.Shell.CrashReporter.Enabled },
	),
	"shell.homepage": prefstore.StringField(
		func(p *Prefs) *string { return &p.Shell.Homepage },
	),
	"shell.keep_screen_on.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.Shell.KeepScreenOn.Enabled },
	),
	"shell.native-orientation": prefstore.StringField(
		func(p *Prefs) *string { return &p.Shell.NativeOrientation },
	),
	"shell.native-titlebar.enabled": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.Shell.NativeTitlebar.Enabled },
	),
	"shell.searchpage": prefstore.StringField(
		func(p *Prefs) *string { return &p.Shell.SearchPage },
	),
	"webgl.testing.context_creation_error": prefstore.BoolField(
		func(p *Prefs) *bool { return &p.WebGL.Testing.ContextCreationError },
	),
}
